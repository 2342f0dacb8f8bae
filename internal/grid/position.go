package grid

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Position is a point on the grid. It is always passed by value.
type Position struct {
	X, Y int
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Position) Manhattan(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// coerce turns a coordinate pair into a Position without clamping.
// Only Position values and two-element arrays qualify as pairs.
func coerce(value any) (Position, error) {
	switch v := value.(type) {
	case Position:
		return v, nil
	case [2]int:
		return Position{X: v[0], Y: v[1]}, nil
	case nil:
		return Position{}, &TypeError{Value: value, Reason: "nil is not a coordinate pair"}
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Array {
		return Position{}, &TypeError{Value: value, Reason: fmt.Sprintf("%T is not a coordinate pair", value)}
	}
	if rv.Len() != 2 {
		return Position{}, &TypeError{Value: value, Reason: fmt.Sprintf("pair needs 2 elements, got %d", rv.Len())}
	}
	x, err := toInt(rv.Index(0))
	if err != nil {
		return Position{}, &TypeError{Value: value, Reason: "x: " + err.Error()}
	}
	y, err := toInt(rv.Index(1))
	if err != nil {
		return Position{}, &TypeError{Value: value, Reason: "y: " + err.Error()}
	}
	return Position{X: x, Y: y}, nil
}

func toInt(v reflect.Value) (int, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, fmt.Errorf("nil element")
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(u), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt(v.Float())
	case reflect.String:
		s := strings.TrimSpace(v.String())
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v.String())
		}
		return n, nil
	}
	return 0, fmt.Errorf("%s is not numeric", v.Kind())
}

// floatToInt truncates toward zero. Values past the int range saturate,
// clamping takes them to the grid edge anyway.
func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v has no integer value", f)
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt, nil
	case f <= math.MinInt64:
		return math.MinInt, nil
	}
	return int(f), nil
}

package grid

import "testing"

func TestTurnLeftCycle(t *testing.T) {
	tests := []struct {
		from, want Facing
	}{
		{Up, Left},
		{Left, Down},
		{Down, Right},
		{Right, Up},
	}
	for _, tt := range tests {
		if got := tt.from.Left(); got != tt.want {
			t.Errorf("%s.Left() = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestTurnRightCycle(t *testing.T) {
	tests := []struct {
		from, want Facing
	}{
		{Up, Right},
		{Right, Down},
		{Down, Left},
		{Left, Up},
	}
	for _, tt := range tests {
		if got := tt.from.Right(); got != tt.want {
			t.Errorf("%s.Right() = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestRotationClosure(t *testing.T) {
	for _, f := range Facings() {
		if got := f.Left().Left().Left().Left(); got != f {
			t.Errorf("four left turns from %s gave %s", f, got)
		}
		if got := f.Left().Right(); got != f {
			t.Errorf("left then right from %s gave %s", f, got)
		}
		if got := f.Right().Left(); got != f {
			t.Errorf("right then left from %s gave %s", f, got)
		}
	}
}

func TestParseFacing(t *testing.T) {
	tests := []struct {
		input string
		want  Facing
		ok    bool
	}{
		{"up", Up, true},
		{"DOWN", Down, true},
		{"Left", Left, true},
		{"right", Right, true},
		{"north", Up, false},
	}
	for _, tt := range tests {
		got, err := ParseFacing(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("ParseFacing(%q) err = %v", tt.input, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseFacing(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestFacingString(t *testing.T) {
	if s := Facing(7).String(); s != "Facing(7)" {
		t.Errorf("unexpected string %q", s)
	}
}

func TestNormalizeOutOfRange(t *testing.T) {
	tests := []struct {
		in, want Facing
	}{
		{Facing(9), Up},
		{Facing(-3), Up},
		{Facing(-1), Down},
		{Facing(4), Right},
		{Left, Left},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Facing(%d).Normalize() = %s, want %s", int(tt.in), got, tt.want)
		}
	}
	if got := Facing(-3).Left(); got != Left {
		t.Errorf("Facing(-3).Left() = %s, want left", got)
	}
	if got := Facing(-3).Right(); got != Right {
		t.Errorf("Facing(-3).Right() = %s, want right", got)
	}
}

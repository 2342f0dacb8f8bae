package trial

import (
	"encoding/json"
	"io"
	"reflect"
	"testing"

	log "github.com/sirupsen/logrus"
)

func testOptions() Options {
	opts := DefaultOptions()
	l := log.New()
	l.SetOutput(io.Discard)
	opts.Log = l
	return opts
}

func TestRunPasses(t *testing.T) {
	opts := testOptions()
	opts.Trials = 200
	sum := Run(opts)
	if !sum.OK() {
		t.Fatalf("failures: %+v", sum.Failures)
	}
	if sum.Trials != 200 || sum.Passed != 200 {
		t.Errorf("summary %+v", sum)
	}
}

func TestRunDeterministic(t *testing.T) {
	a := testOptions()
	a.Workers = 1
	b := testOptions()
	b.Workers = 6
	if sa, sb := Run(a), Run(b); !reflect.DeepEqual(sa, sb) {
		t.Errorf("worker count changed the summary: %+v vs %+v", sa, sb)
	}
}

func TestRunDegenerateSizes(t *testing.T) {
	opts := testOptions()
	opts.MinSize, opts.MaxSize = 0, 0
	opts.Workers = 0
	opts.MaxMoves = 5
	sum := Run(opts)
	if !sum.OK() {
		t.Fatalf("failures on 0x0 grids: %+v", sum.Failures)
	}
}

func TestSummaryJSON(t *testing.T) {
	b, err := json.Marshal(Summary{Trials: 2, Passed: 1, Failures: []Failure{{Trial: 1, Reason: "x"}}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"trials":2,"passed":1,"total_moves":0,"failures":[{"trial":1,"reason":"x"}]}`
	if string(b) != want {
		t.Errorf("got %s", b)
	}
}

func TestRunNegativeOptions(t *testing.T) {
	tests := []Options{
		{Trials: 3, MinSize: -3, MaxSize: -1},
		{Trials: 3, MinSize: -2, MaxSize: 4, MaxMoves: -5},
		{Trials: 3, MaxSize: 3, MaxMoves: -1, Workers: -2},
	}
	for _, opts := range tests {
		opts.Log = testOptions().Log
		sum := Run(opts)
		if !sum.OK() || sum.Trials != 3 {
			t.Errorf("Run(%+v) = %+v", opts, sum)
		}
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := newRand(5), newRand(5)
	for i := 0; i < 10; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if newRand(0).Int63() != newRand(1).Int63() {
		t.Errorf("seed 0 should behave like seed 1")
	}
}

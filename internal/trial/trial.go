package trial

import (
	"fmt"
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"

	"gridbot/internal/grid"
)

type Options struct {
	Trials   int
	Workers  int
	Seed     int64
	MinSize  int
	MaxSize  int
	MaxMoves int
	Log      log.FieldLogger
}

func DefaultOptions() Options {
	return Options{Trials: 100, Workers: 8, Seed: 12345, MinSize: 0, MaxSize: 8, MaxMoves: 10}
}

type Failure struct {
	Trial  int    `json:"trial"`
	Reason string `json:"reason"`
}

type Summary struct {
	Trials     int       `json:"trials"`
	Passed     int       `json:"passed"`
	TotalMoves int       `json:"total_moves"`
	Failures   []Failure `json:"failures,omitempty"`
}

func (s Summary) OK() bool {
	return s.Passed == s.Trials
}

type result struct {
	trial int
	moves int
	err   error
}

// Run executes opts.Trials independent random walks. Every trial owns
// its grid and generator, so the summary only depends on the seed.
func Run(opts Options) Summary {
	if opts.Trials < 0 {
		opts.Trials = 0
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	opts.MinSize = max(0, opts.MinSize)
	opts.MaxMoves = max(0, opts.MaxMoves)
	if opts.MaxSize < opts.MinSize {
		opts.MaxSize = opts.MinSize
	}
	logger := opts.Log
	if logger == nil {
		logger = log.StandardLogger()
	}

	jobs := make(chan int, opts.Trials)
	results := make([]result, opts.Trials)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := newRand(opts.Seed + int64(i)*7919)
				moves, err := walk(rng, opts)
				results[i] = result{trial: i, moves: moves, err: err}
			}
		}()
	}
	for i := 0; i < opts.Trials; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sum := Summary{Trials: opts.Trials}
	for _, r := range results {
		sum.TotalMoves += r.moves
		if r.err != nil {
			logger.WithFields(log.Fields{"trial": r.trial}).Warn(r.err)
			sum.Failures = append(sum.Failures, Failure{Trial: r.trial, Reason: r.err.Error()})
			continue
		}
		sum.Passed++
	}
	logger.WithFields(log.Fields{"trials": sum.Trials, "passed": sum.Passed, "moves": sum.TotalMoves}).Info("trials finished")
	return sum
}

// walk drives one fresh AdvancedGrid and checks its invariants.
func walk(rng *rand.Rand, opts Options) (int, error) {
	span := opts.MaxSize - opts.MinSize + 1
	w := opts.MinSize + rng.Intn(span)
	h := opts.MinSize + rng.Intn(span)
	enemy := grid.Position{X: rng.Intn(w + 1), Y: rng.Intn(h + 1)}
	a := grid.NewAdvancedGrid(w, h, enemy)

	start := grid.Position{X: rng.Intn(w + 1), Y: rng.Intn(h + 1)}
	if err := a.SetPosition(start); err != nil {
		return 0, err
	}
	if a.Position() != start {
		return 0, fmt.Errorf("in-bounds start %s stored as %s", start, a.Position())
	}

	moves := rng.Intn(opts.MaxMoves + 1)
	for i := 0; i < moves; i++ {
		f := grid.Facings()[rng.Intn(4)]
		if err := checkTurns(a, f); err != nil {
			return i, err
		}
		a.SetDirection(f)

		prev := a.Position()
		dx, dy := f.Delta()
		want := grid.Position{X: max(0, min(prev.X+dx, w)), Y: max(0, min(prev.Y+dy, h))}
		got := a.MoveForward()
		if got != want || a.Position() != want {
			return i + 1, fmt.Errorf("%dx%d move %s from %s: got %s, want %s", w, h, f, prev, got, want)
		}
		if a.Steps() != i+1 {
			return i + 1, fmt.Errorf("steps = %d after %d moves", a.Steps(), i+1)
		}

		a.RecordPosition(i)
		if p, ok := a.PositionAt(i); !ok || p != got {
			return i + 1, fmt.Errorf("history step %d = %s, want %s", i, p, got)
		}
	}
	if _, ok := a.PositionAt(-1); ok {
		return moves, fmt.Errorf("unrecorded step reported present")
	}

	cur := a.Position()
	want := abs(cur.X-enemy.X) + abs(cur.Y-enemy.Y)
	if d := a.DistanceToEnemy(); d != want {
		return moves, fmt.Errorf("distance from %s to %s = %d, want %d", cur, enemy, d, want)
	}
	if a.FindEnemy() != (cur == enemy) {
		return moves, fmt.Errorf("FindEnemy at %s with enemy %s = %v", cur, enemy, a.FindEnemy())
	}
	return moves, nil
}

func checkTurns(a *grid.AdvancedGrid, f grid.Facing) error {
	a.SetDirection(f)
	if got := a.TurnLeft(); got != grid.Facing((int(f)+1)%4) {
		return fmt.Errorf("left of %s = %s", f, got)
	}
	if got := a.TurnRight(); got != f {
		return fmt.Errorf("right did not undo left from %s, got %s", f, got)
	}
	for i := 0; i < 4; i++ {
		a.TurnLeft()
	}
	if a.Direction() != f {
		return fmt.Errorf("four left turns from %s ended at %s", f, a.Direction())
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// newRand returns a deterministic generator. Seed 0 is treated as 1.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

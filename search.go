package listsearch

import (
	"golang.org/x/sync/errgroup"

	lserrors "github.com/azizgokhannarin/imaginarylistsearch/errors"
)

// Result is the outcome of searching one block: the best key found and
// its normalized membership score.
type Result struct {
	Key   uint32
	Score int

	// RestartScores holds the best score reached by each restart, in
	// restart order. Populated only when WithRestartScores is set.
	RestartScores []int
}

// climbResult is the outcome of refining one restart.
type climbResult struct {
	key   uint32
	score int
}

// Search explores the 32-bit key space for the key whose membership
// predicate classifies the largest share of block onto one side, using
// random restarts each refined by greedy single-bit-flip hillclimbing.
//
// For a fixed block, configuration, and seed (or injected KeySource) the
// result is fully reproducible, including under WithWorkers > 1.
func Search(block []uint16, opts ...SearchOption) (Result, error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.restarts <= 0 {
		return Result{}, lserrors.ErrNoRestarts
	}
	if cfg.passes < 0 {
		return Result{}, lserrors.ErrNegativePasses
	}
	if len(block) == 0 {
		return Result{}, lserrors.ErrEmptyBlock
	}

	src := cfg.keys
	if src == nil {
		src = newSeededKeySource(cfg.seed)
	}

	// Draw every starting key up front. The draw order is the
	// determinism contract: restart i always begins from the i-th value
	// produced by the source, whether restarts run serially or on
	// workers.
	starts := make([]uint32, cfg.restarts)
	for i := range starts {
		starts[i] = src.Uint32()
	}

	climbs := make([]climbResult, cfg.restarts)
	if cfg.workers > 1 {
		runClimbsParallel(block, starts, climbs, cfg.workers, cfg.passes)
	} else {
		for i, start := range starts {
			climbs[i] = hillclimb(block, start, cfg.passes)
		}
	}

	// Reduce in restart order with a strict comparison, so the earliest
	// restart wins ties regardless of completion order above.
	res := Result{Score: -1}
	if cfg.restartScores {
		res.RestartScores = make([]int, cfg.restarts)
	}
	for i, c := range climbs {
		if res.RestartScores != nil {
			res.RestartScores[i] = c.score
		}
		if c.score > res.Score {
			res.Key = c.key
			res.Score = c.score
		}
	}
	return res, nil
}

// hillclimb greedily refines start by single-bit key flips.
//
// Each pass scans bits 0..31 in order and adopts any strictly improving
// flip immediately, so later bits in the same pass are evaluated against
// the already-updated key. A pass with no improvement means a local
// optimum; the climb stops early. This eager first-improvement policy is
// a reproducibility contract, not an optimization: evaluating all 32
// flips against a frozen snapshot would converge to different keys.
func hillclimb(block []uint16, start uint32, passes int) climbResult {
	cur := start
	curScore := Score(cur, block)

	for pass := 0; pass < passes; pass++ {
		improved := false
		for bit := 0; bit < 32; bit++ {
			cand := cur ^ (1 << bit)
			if sc := Score(cand, block); sc > curScore {
				cur = cand
				curScore = sc
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	return climbResult{key: cur, score: curScore}
}

// runClimbsParallel hillclimbs the restarts on up to workers goroutines.
// Restarts are embarrassingly parallel: each reads the shared block and
// writes only its own climbs slot, so no synchronization beyond the group
// wait is needed. Determinism is preserved because the caller drew the
// starting keys before dispatch and reduces results in restart order.
func runClimbsParallel(block []uint16, starts []uint32, climbs []climbResult, workers, passes int) {
	var g errgroup.Group
	g.SetLimit(workers)
	for i, start := range starts {
		g.Go(func() error {
			climbs[i] = hillclimb(block, start, passes)
			return nil
		})
	}
	_ = g.Wait() // climbs cannot fail; Wait only joins the workers
}

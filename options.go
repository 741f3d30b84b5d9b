package listsearch

// Default search parameters. The restart and pass counts are the tuned
// values from the reference scan tool; the seed is its base seed, to which
// callers typically add a block index.
const (
	DefaultRestarts        = 250
	DefaultHillClimbPasses = 8
	DefaultSeed            = uint64(0xC0FFEE123456789)
)

// SearchOption is a functional option for configuring a Search call.
type SearchOption func(*searchConfig)

type searchConfig struct {
	restarts      int
	passes        int
	seed          uint64
	workers       int
	keys          KeySource // nil means a seeded default source
	restartScores bool
}

func defaultSearchConfig() *searchConfig {
	return &searchConfig{
		restarts: DefaultRestarts,
		passes:   DefaultHillClimbPasses,
		seed:     DefaultSeed,
		workers:  1,
	}
}

// WithRestarts sets the number of random starting keys. Each restart is
// refined independently by hillclimbing; more restarts reduce the chance
// of reporting a poor local optimum.
func WithRestarts(n int) SearchOption {
	return func(c *searchConfig) {
		c.restarts = n
	}
}

// WithHillClimbPasses sets the maximum number of greedy bit-flip passes
// per restart. Zero disables local refinement, reducing the search to pure
// random sampling.
func WithHillClimbPasses(n int) SearchOption {
	return func(c *searchConfig) {
		c.passes = n
	}
}

// WithSeed sets the seed for the default key source. Ignored when a
// KeySource is injected via WithKeySource.
func WithSeed(seed uint64) SearchOption {
	return func(c *searchConfig) {
		c.seed = seed
	}
}

// WithKeySource injects the generator of restart starting keys, replacing
// the seeded default. Useful for tests that need fixed key sequences.
func WithKeySource(src KeySource) SearchOption {
	return func(c *searchConfig) {
		c.keys = src
	}
}

// WithWorkers sets the number of goroutines hillclimbing restarts in
// parallel. Values below 2 run the search serially. The result is
// bit-identical regardless of worker count: starting keys are drawn
// up front and the best result is reduced in restart order.
func WithWorkers(n int) SearchOption {
	return func(c *searchConfig) {
		c.workers = n
	}
}

// WithRestartScores records each restart's best score in the Result, in
// restart order. Diagnostic only; the winning key and score are unchanged.
func WithRestartScores() SearchOption {
	return func(c *searchConfig) {
		c.restartScores = true
	}
}

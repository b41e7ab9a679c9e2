package prefilter

// Config controls how aggressively Build's static analyses search for a
// usable Scanner. It mirrors the handful of tunables a caller of this
// package's Build would plausibly want exposed, in the spirit of the
// teacher's own meta.Config knobs for its strategy selection.
type Config struct {
	// EnablePrefilter disables Build entirely when false, causing every
	// search to fall back to the unaccelerated interpreter. Disabling it
	// can only make a search slower, never change its result.
	EnablePrefilter bool

	// MinLiteralLen is the shortest literal prefix NewLiteralScanner will
	// accept. Shorter literals reject too few positions to be worth the
	// Aho-Corasick automaton's setup cost.
	MinLiteralLen int

	// MaxLiteralPrefixLen bounds how many code units NewLiteralScanner will
	// collect along a single epsilon path before stopping.
	MaxLiteralPrefixLen int

	// MaxFirstSetDepth bounds how deep vm.ExtractFirstSet will walk the
	// epsilon graph before giving up.
	MaxFirstSetDepth int
}

// DefaultConfig returns the Config Build is called with when a caller has
// no reason to tune it.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:     true,
		MinLiteralLen:       2,
		MaxLiteralPrefixLen: 32,
		MaxFirstSetDepth:    64,
	}
}

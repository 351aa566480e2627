// Package config holds the core's tunables, configured with
// functional options the way the teacher configures its display and
// audio subsystems (gameboy-emulator's display.Config /
// audio.Config constructors take ...Option and apply defaults first).
package config

// Config controls how the core builds and runs blocks.
type Config struct {
	// NoBlockCache forces every ExecuteOneBlock to rebuild its block
	// rather than reusing a cached BlockDescriptor. Useful for
	// debugging the builder itself.
	NoBlockCache bool

	// DebuggingEnabled turns on CheckBreakpoint guard emission.
	DebuggingEnabled bool

	// MemcheckEnabled turns on CheckDSI guard emission after
	// load/store instructions.
	MemcheckEnabled bool

	// ShouldHandleFPException decides, per guest PC, whether an
	// instruction that may raise a program exception (trap-immediate,
	// FP arithmetic/comparison) gets a CheckPE guard after it (false
	// omits that guard for the address). The CheckFPU guard does not
	// consult it.
	ShouldHandleFPException func(pc uint32) bool

	// DefaultCycleBudget is the downcount Core.Init loads into the
	// context. Run itself does not refill it.
	DefaultCycleBudget int32
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithNoBlockCache disables block-cache reuse.
func WithNoBlockCache(v bool) Option {
	return func(c *Config) { c.NoBlockCache = v }
}

// WithDebugging toggles breakpoint guard emission.
func WithDebugging(v bool) Option {
	return func(c *Config) { c.DebuggingEnabled = v }
}

// WithMemcheck toggles memory-guard emission.
func WithMemcheck(v bool) Option {
	return func(c *Config) { c.MemcheckEnabled = v }
}

// WithFPExceptionPolicy overrides which addresses get a CheckPE guard.
func WithFPExceptionPolicy(f func(pc uint32) bool) Option {
	return func(c *Config) { c.ShouldHandleFPException = f }
}

// WithCycleBudget sets the downcount Init loads.
func WithCycleBudget(cycles int32) Option {
	return func(c *Config) { c.DefaultCycleBudget = cycles }
}

// New returns a Config with the teacher-style defaults applied first,
// then every opt layered on top in order.
func New(opts ...Option) *Config {
	c := &Config{
		NoBlockCache:             false,
		DebuggingEnabled:         false,
		MemcheckEnabled:          true,
		ShouldHandleFPException:  func(uint32) bool { return true },
		DefaultCycleBudget:       200000,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Package ppc models the slice of guest PowerPC CPU state that the
// threaded-code core reads and mutates: the register file, the
// run-state, and the exception bitset. It has no opinion on how
// instructions are decoded or executed — those are the analyzer's
// and interpreter's jobs.
package ppc

// RunState describes where the guest CPU is in its execution lifecycle.
// The dispatch loop polls it between blocks to decide whether to keep
// running.
type RunState int

const (
	StateStopped RunState = iota
	StateRunning
	StatePaused
	StateStepping
)

// String returns a human-readable name for a RunState.
func (s RunState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateStepping:
		return "Stepping"
	default:
		return "Unknown"
	}
}

// MSR bit used by CheckFPU. Real hardware carries this much further up
// the register (bit 13 in MSB-0 numbering); we only need the one bit
// this core inspects.
const MSRFloatingPointAvailable uint32 = 1 << 13

// CoreContext is the guest register file plus the bookkeeping fields
// the threaded-code core and its handler records touch directly:
// PC/NPC, the signed cycle budget (downcount), MSR, and run state.
type CoreContext struct {
	GPR [32]uint32
	FPR [32]float64

	CR  uint32
	LR  uint32
	CTR uint32
	XER uint32
	MSR uint32

	PC  uint32
	NPC uint32

	// Downcount is the guest's remaining cycle budget for the current
	// timing slice. It is signed because guard handlers may overshoot
	// it by the cost of the instruction that triggered them.
	Downcount int32

	Exceptions Exceptions
	State      RunState
}

// NewCoreContext returns a context in the Stopped state with MSR.FP
// set (floating point available by default, as after a typical guest
// boot sequence).
func NewCoreContext() *CoreContext {
	return &CoreContext{
		MSR:   MSRFloatingPointAvailable,
		State: StateStopped,
	}
}

// FPUEnabled reports whether MSR.FP is set.
func (c *CoreContext) FPUEnabled() bool {
	return c.MSR&MSRFloatingPointAvailable != 0
}

// SetFPUEnabled sets or clears MSR.FP.
func (c *CoreContext) SetFPUEnabled(enabled bool) {
	if enabled {
		c.MSR |= MSRFloatingPointAvailable
	} else {
		c.MSR &^= MSRFloatingPointAvailable
	}
}

// Reset clears the context back to its zero/boot state without
// reallocating.
func (c *CoreContext) Reset() {
	*c = CoreContext{MSR: MSRFloatingPointAvailable, State: StateStopped}
}

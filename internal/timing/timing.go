// Package timing is the out-of-scope "timing/scheduler" collaborator:
// it owns the guest's downcount budget and decides when a block ends
// a dispatch slice (cycle budget exhausted) versus continuing to
// chain into the next block.
//
// Grounded on gameboy-emulator's internal/timer.Clock, which
// accumulates cycles and fires on a threshold — generalized here from
// a fixed divider to an arbitrary signed downcount budget, matching
// the signed cycle-budget semantics CoreContext.Downcount carries.
package timing

import "threadedppc/internal/ppc"

// Scheduler advances the guest's cycle budget and reports whether the
// dispatch loop should stop running blocks for this slice.
type Scheduler interface {
	// Advance deducts cycles from the context's Downcount and reports
	// whether the budget is now exhausted (Downcount <= 0).
	Advance(ctx *ppc.CoreContext, cycles int32) (exhausted bool)

	// Idle fast-forwards the budget to zero, used by CheckIdle when
	// the analyzer has flagged a block as a spin loop: rather than
	// re-running the loop body cycle by cycle, the scheduler jumps
	// straight to the next scheduled event.
	Idle(ctx *ppc.CoreContext)

	// Refill replenishes the budget for a new dispatch slice.
	Refill(ctx *ppc.CoreContext, cycles int32)
}

// WallClockScheduler is the reference Scheduler: pure downcount
// bookkeeping against CoreContext, no real wall-clock involved despite
// the name (which follows the teacher's own Clock naming for "the
// thing that paces guest time").
type WallClockScheduler struct{}

// NewWallClockScheduler returns the default Scheduler.
func NewWallClockScheduler() *WallClockScheduler { return &WallClockScheduler{} }

// Advance implements Scheduler.
func (WallClockScheduler) Advance(ctx *ppc.CoreContext, cycles int32) bool {
	ctx.Downcount -= cycles
	return ctx.Downcount <= 0
}

// Idle implements Scheduler.
func (WallClockScheduler) Idle(ctx *ppc.CoreContext) {
	ctx.Downcount = 0
}

// Refill implements Scheduler.
func (WallClockScheduler) Refill(ctx *ppc.CoreContext, cycles int32) {
	ctx.Downcount = cycles
}

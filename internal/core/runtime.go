package core

import (
	"threadedppc/internal/breakpoint"
	"threadedppc/internal/hle"
	"threadedppc/internal/ppc"
	"threadedppc/internal/record"
	"threadedppc/internal/timing"
)

// Runtime holds the collaborators that a handler record needs beyond
// the raw CoreContext: the HLE table, breakpoint registry, and
// scheduler, plus the performance-monitor counters the block-end and
// per-kind-count handlers fold into. Handlers that need one of these
// are bound methods on *Runtime rather than parameters threaded
// through HandlerFunc, so the record package itself stays
// dependency-free on everything but ppc.
type Runtime struct {
	hle         hle.Table
	breakpoints breakpoint.Registry
	scheduler   timing.Scheduler
	perf        PerformanceMonitor
}

// NewRuntime wires the collaborators a block's records will dispatch
// through.
func NewRuntime(hleTable hle.Table, breakpoints breakpoint.Registry, scheduler timing.Scheduler) *Runtime {
	return &Runtime{hle: hleTable, breakpoints: breakpoints, scheduler: scheduler}
}

// HLEBridge dispatches to the HLE hook named by this record's Data
// (a hook index resolved at build time by hle.Table.TryReplace).
func (rt *Runtime) HLEBridge(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	hookIndex := int(chain[i].Data)
	if err := rt.hle.Dispatch(hookIndex, ctx); err != nil {
		ctx.RequestException(ppc.ExceptionProgram)
		ppc.CheckExceptions(ctx)
		return 0, true
	}
	return i + 1, false
}

// HasBreakpoint reports whether address currently has a breakpoint
// set, used by the builder to decide whether an instruction needs a
// CheckBreakpoint guard in front of it.
func (rt *Runtime) HasBreakpoint(address uint32) bool {
	return rt.breakpoints != nil && rt.breakpoints.Has(address)
}

// CheckBreakpoint invokes the breakpoint check for the instruction
// address the immediately preceding WritePC record just committed into
// ctx.PC: if it carries a breakpoint, the guest is moved to
// StatePaused. Whatever put the CPU in a non-Running state — this
// check or something else entirely — halts the chain here, charging
// this record's Data cycle count against downcount first.
func (rt *Runtime) CheckBreakpoint(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	if rt.breakpoints != nil && rt.breakpoints.Has(ctx.PC) {
		ctx.State = ppc.StatePaused
	}
	if ctx.State != ppc.StateRunning {
		ctx.Downcount -= int32(chain[i].Data)
		return 0, true
	}
	return i + 1, false
}

// CheckIdle notifies the scheduler to skip idle cycles when the branch
// that just ran landed back on this block's own start address (this
// record's Data), then always continues — EndBlock still follows to
// charge the block's cycles and commit PC.
func (rt *Runtime) CheckIdle(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	blockStart := uint32(chain[i].Data)
	if ctx.NPC == blockStart {
		rt.scheduler.Idle(ctx)
	}
	return i + 1, false
}

// EndBlock commits NPC into PC, charges this record's Data cycle count
// against the scheduler's downcount budget, and folds those cycles
// into the performance monitor's instruction counter. It never halts
// on its own — the dispatch loop decides whether to keep running
// blocks by reading ctx.Downcount after the chain (ending in Return)
// completes.
func (rt *Runtime) EndBlock(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	cycles := int32(chain[i].Data)
	ctx.PC = ctx.NPC
	rt.scheduler.Advance(ctx, cycles)
	rt.perf.Instructions += uint64(cycles)
	return i + 1, false
}

// UpdateLS folds this record's Data count into the performance
// monitor's load/store counter.
func (rt *Runtime) UpdateLS(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	rt.perf.LoadStores += chain[i].Data
	return i + 1, false
}

// UpdateFP folds this record's Data count into the performance
// monitor's floating-point counter.
func (rt *Runtime) UpdateFP(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	rt.perf.FloatingPoint += chain[i].Data
	return i + 1, false
}

// Perf returns a snapshot of the performance-monitor counters
// accumulated so far.
func (rt *Runtime) Perf() PerformanceMonitor { return rt.perf }

// recordBlockStepped increments the dispatch loop's block counter.
// Called once per ExecuteOneBlock, regardless of which guard ended the
// chain.
func (rt *Runtime) recordBlockStepped() { rt.perf.BlocksStepped++ }

// Package core assembles the leaf and collaborator packages into a
// runnable threaded-code dispatch loop: Arena stores records,
// Builder turns an analyzed block into a chain of them, and Core ties
// block lookup, building, and execution together behind the small
// surface a guest-driving frontend needs (ExecuteOneBlock, SingleStep,
// Run).
package core

import (
	"fmt"

	"threadedppc/internal/analyzer"
	"threadedppc/internal/blockcache"
	"threadedppc/internal/breakpoint"
	"threadedppc/internal/config"
	"threadedppc/internal/hle"
	"threadedppc/internal/interpreter"
	"threadedppc/internal/ppc"
	"threadedppc/internal/record"
	"threadedppc/internal/timing"
)

// Core is the top-level backend: single-threaded, cooperative,
// no locks, matching the dispatch loop's own concurrency model.
type Core struct {
	arena     *Arena
	cache     blockcache.Index
	builder   *Builder
	runtime   *Runtime
	scheduler timing.Scheduler
	cfg       *config.Config
	mem       analyzer.GuestMemory
}

// New wires a complete Core out of its collaborators. lib resolves
// opcodes, an analyzes blocks, hleTable and breakpoints are consulted
// by the builder, scheduler paces downcount, and mem is the guest
// instruction memory blocks are built from.
func New(
	cfg *config.Config,
	mem analyzer.GuestMemory,
	lib interpreter.Library,
	an analyzer.Analyzer,
	hleTable hle.Table,
	breakpoints breakpoint.Registry,
	scheduler timing.Scheduler,
	arenaCapacity int,
) (*Core, error) {
	arena := NewArena(arenaCapacity)
	direct, err := BuildDirectTable(lib)
	if err != nil {
		return nil, fmt.Errorf("core: building direct table: %w", err)
	}
	runtime := NewRuntime(hleTable, breakpoints, scheduler)
	builder := NewBuilder(arena, lib, direct, an, hleTable, cfg, runtime)

	return &Core{
		arena:     arena,
		cache:     blockcache.NewInMemoryIndex(),
		builder:   builder,
		runtime:   runtime,
		scheduler: scheduler,
		cfg:       cfg,
		mem:       mem,
	}, nil
}

// GetBlockCache exposes the live block-cache index, for a frontend
// that wants to introspect or pre-warm it.
func (c *Core) GetBlockCache() blockcache.Index { return c.cache }

// GetName identifies this backend the way a multi-backend frontend
// would use to label it in a picker or log line.
func (c *Core) GetName() string { return "ThreadedInterpreter" }

// ClearCache wipes every built block and resets the arena they lived
// in. Descriptor indices become invalid the instant this returns, so
// the cache and arena are always cleared together.
func (c *Core) ClearCache() {
	c.cache.Clear()
	c.arena.Reset()
}

// Init prepares ctx for execution: refills its downcount for the
// first dispatch slice and transitions it to Running.
func (c *Core) Init(ctx *ppc.CoreContext) {
	c.scheduler.Refill(ctx, c.cfg.DefaultCycleBudget)
	ctx.State = ppc.StateRunning
}

// Shutdown stops the guest and clears every built block, releasing
// the arena back to empty.
func (c *Core) Shutdown(ctx *ppc.CoreContext) {
	ctx.State = ppc.StateStopped
	c.ClearCache()
}

// resolveBlock returns the descriptor for startAddress, building and
// inserting one if none is cached or the config forces a rebuild
// every time.
func (c *Core) resolveBlock(startAddress uint32) (blockcache.BlockDescriptor, error) {
	if !c.cfg.NoBlockCache {
		if desc, ok := c.cache.Lookup(startAddress); ok {
			return desc, nil
		}
	}

	desc, err := c.builder.Build(c.mem, startAddress)
	if _, nearCapacity := err.(ErrArenaNearCapacity); nearCapacity {
		c.ClearCache()
		desc, err = c.builder.Build(c.mem, startAddress)
	}
	if err != nil {
		return blockcache.BlockDescriptor{}, err
	}

	if !c.cfg.NoBlockCache {
		c.cache.Insert(desc)
	}
	return desc, nil
}

// ExecuteOneBlock resolves the block at ctx.PC and runs its chain of
// records to completion (every chain halts — at worst at the terminal
// Return record).
func (c *Core) ExecuteOneBlock(ctx *ppc.CoreContext) error {
	desc, err := c.resolveBlock(ctx.PC)
	if err != nil {
		return fmt.Errorf("core: resolving block at 0x%08X: %w", ctx.PC, err)
	}

	c.runtime.recordBlockStepped()

	chain := c.arena.Slice()[desc.ArenaStart:desc.ArenaEnd]
	i := 0
	for {
		next, halt := chain[i].Fn(chain, i, ctx)
		if halt {
			return nil
		}
		i = next
	}
}

// SingleStep executes exactly one block and forces the guest into the
// Stepping state for the duration, so a debugger frontend can rely on
// control returning after a single block regardless of downcount.
func (c *Core) SingleStep(ctx *ppc.CoreContext) error {
	prev := ctx.State
	ctx.State = ppc.StateStepping
	err := c.ExecuteOneBlock(ctx)
	if err == nil && ctx.State == ppc.StateStepping {
		ctx.State = prev
	}
	return err
}

// Run executes blocks until the guest's downcount is exhausted, a
// breakpoint pauses it, or an error aborts the slice.
func (c *Core) Run(ctx *ppc.CoreContext) error {
	ctx.State = ppc.StateRunning
	for ctx.State == ppc.StateRunning && ctx.Downcount > 0 {
		if err := c.ExecuteOneBlock(ctx); err != nil {
			return err
		}
	}
	return nil
}

// HandleFault always reports the fault as unhandled: this backend
// generates no native code and traps no host-level signals, so a
// host-side fault arriving against guest code is the surrounding
// system's problem, not this core's. Guest-visible exceptions are
// instead raised synchronously by the handler chain itself (CheckFPU,
// CheckDSI, CheckPE) during normal dispatch.
func (c *Core) HandleFault(ctx *ppc.CoreContext, address uint32, fault ppc.Exceptions) bool {
	return false
}

// Jit is the entry point a caller uses when it only knows it wants a
// block built for ctx.PC without caring whether one already exists;
// unlike ExecuteOneBlock it never runs the block, only resolves it,
// letting a JIT-style frontend pre-warm the cache ahead of execution.
func (c *Core) Jit(ctx *ppc.CoreContext) error {
	_, err := c.resolveBlock(ctx.PC)
	return err
}

// InvalidateRange must be called whenever guest code memory in
// [startAddress, endAddress) is written to, so any cached block built
// over stale bytes is dropped before it can run again.
func (c *Core) InvalidateRange(startAddress, endAddress uint32) {
	c.cache.InvalidateRange(startAddress, endAddress)
}

// GetAsmRoutines reports that this backend has no native code paths —
// every dispatch goes through Go handler closures, so there is no
// assembly entry-point table to expose.
func (c *Core) GetAsmRoutines() map[string]uintptr { return nil }

// PerformanceMonitor is the consumed "UpdatePerformanceMonitor"
// collaborator's counter set: instruction count, load/stores
// performed, floating-point ops performed, and blocks stepped by the
// dispatch loop. EndBlock, UpdateLS, and UpdateFP fold their operands
// into the first three (EndBlock's operand is the block's cycle
// count, so Instructions accumulates cycles); ExecuteOneBlock
// increments the fourth.
type PerformanceMonitor struct {
	Instructions  uint64
	LoadStores    uint64
	FloatingPoint uint64
	BlocksStepped uint64
}

// Perf returns a snapshot of the dispatch counters accumulated so far.
func (c *Core) Perf() PerformanceMonitor { return c.runtime.Perf() }

var _ record.HandlerFunc = Return

package core

import (
	"log/slog"

	"threadedppc/internal/analyzer"
	"threadedppc/internal/blockcache"
	"threadedppc/internal/config"
	"threadedppc/internal/hle"
	"threadedppc/internal/interpreter"
	"threadedppc/internal/record"
)

// perInstructionCycles is the flat cycle cost charged for every
// emitted instruction, standing in for the per-opcode timing table a
// full core would consult. It keeps downcount accounting exercised
// without claiming per-instruction timing fidelity.
const perInstructionCycles = 4

// Builder turns one analyzed block into a contiguous run of handler
// records in an Arena, matching it against the collaborators that
// decide which guard records a given instruction needs.
type Builder struct {
	arena   *Arena
	lib     interpreter.Library
	direct  *DirectTable
	an      analyzer.Analyzer
	hle     hle.Table
	cfg     *config.Config
	runtime *Runtime
}

// NewBuilder wires every collaborator the builder consults while
// walking an analyzed block.
func NewBuilder(arena *Arena, lib interpreter.Library, direct *DirectTable, an analyzer.Analyzer, hleTable hle.Table, cfg *config.Config, runtime *Runtime) *Builder {
	return &Builder{arena: arena, lib: lib, direct: direct, an: an, hle: hleTable, cfg: cfg, runtime: runtime}
}

// ErrArenaNearCapacity signals that the arena has too little headroom
// left to safely build another block; the caller must clear the block
// cache and reset the arena before retrying.
type ErrArenaNearCapacity struct{}

func (ErrArenaNearCapacity) Error() string {
	return "builder: arena near capacity, clear block cache before building"
}

// Build analyzes and emits one block starting at startAddress,
// returning the descriptor the block cache should index it under.
func (b *Builder) Build(mem analyzer.GuestMemory, startAddress uint32) (blockcache.BlockDescriptor, error) {
	if b.arena.NearCapacity() {
		return blockcache.BlockDescriptor{}, ErrArenaNearCapacity{}
	}

	meta, analyzeErr := b.an.Analyze(mem, b.lib, startAddress)

	arenaStart := b.arena.Len()
	var cumulativeCycles, numLoadStore, numFloatingPoint int64
	fpuGuardEmitted := false
	replaced := false

	endAddress := startAddress
	for _, inst := range meta.Instructions {
		endAddress = inst.Address + 4

		// Cycle and kind-count accounting happens before the HLE probe
		// and guard placement, so a Replace hook or a guard abort still
		// charges the instruction it preempted.
		cumulativeCycles += perInstructionCycles
		if inst.IsLoadStore {
			numLoadStore++
		}
		if inst.UsesFPU {
			numFloatingPoint++
		}

		if hookIndex, ok := b.hle.TryReplace(inst.Address); ok {
			b.emit(record.Record{Fn: WritePC, Data: uint64(inst.Address)})
			b.emit(record.Record{Fn: b.runtime.HLEBridge, Data: uint64(hookIndex)})
			b.emit(record.Record{Fn: b.runtime.EndBlock, Data: uint64(cumulativeCycles)})
			b.emit(record.Record{Fn: Return})
			replaced = true
			break
		}

		checkFPU := inst.UsesFPU && !fpuGuardEmitted
		endBlock := inst.EndsBlock
		memcheck := inst.IsLoadStore && b.cfg.MemcheckEnabled
		checkPE := !endBlock && inst.MayRaiseProgramException && b.cfg.ShouldHandleFPException(inst.Address)
		breakpoint := b.cfg.DebuggingEnabled && b.runtime.HasBreakpoint(inst.Address)

		if checkFPU || endBlock || memcheck || checkPE || breakpoint {
			b.emit(record.Record{Fn: WritePC, Data: uint64(inst.Address)})
		}
		if breakpoint {
			b.emit(record.Record{Fn: b.runtime.CheckBreakpoint, Data: uint64(cumulativeCycles)})
		}
		if checkFPU {
			b.emit(record.Record{Fn: CheckFPU, Data: uint64(cumulativeCycles)})
			fpuGuardEmitted = true
		}

		b.emitInstruction(inst)

		if memcheck {
			b.emit(record.Record{Fn: CheckDSI, Data: uint64(cumulativeCycles)})
		}
		if checkPE {
			b.emit(record.Record{Fn: CheckPE, Data: uint64(cumulativeCycles)})
		}
		if inst.IsIdleLoop {
			b.emit(record.Record{Fn: b.runtime.CheckIdle, Data: uint64(startAddress)})
		}
	}

	if !replaced {
		chainEnabled := analyzeErr == nil

		if !chainEnabled {
			// Broken-block trailer: the analyzer could not fully classify
			// this block (unmapped fetch or unrecognized word). Still
			// finalize a runnable block up to the last good instruction,
			// forcing NPC to resume right after it, and disable chaining
			// so the dispatch loop always re-resolves the next block
			// through a full lookup rather than trusting a cached jump.
			slog.Warn("block analysis failed, emitting broken-block trailer",
				"address", startAddress, "resumeAt", endAddress, "err", analyzeErr)
			b.emit(record.Record{Fn: WriteBrokenBlockNPC, Data: uint64(endAddress)})
		}

		b.emit(record.Record{Fn: b.runtime.EndBlock, Data: uint64(cumulativeCycles)})
		if numLoadStore > 0 {
			b.emit(record.Record{Fn: b.runtime.UpdateLS, Data: uint64(numLoadStore)})
		}
		if numFloatingPoint > 0 {
			b.emit(record.Record{Fn: b.runtime.UpdateFP, Data: uint64(numFloatingPoint)})
		}
		b.emit(record.Record{Fn: Return})
	}

	arenaEnd := b.arena.Len()
	return blockcache.BlockDescriptor{
		Address:      startAddress,
		EndAddress:   endAddress,
		ArenaStart:   arenaStart,
		ArenaEnd:     arenaEnd,
		ChainEnabled: analyzeErr == nil && !replaced,
	}, nil
}

// emitInstruction emits the Direct handler for inst.Op when the
// interpreter library curated it, falling back to the single generic
// Indirect handler otherwise.
func (b *Builder) emitInstruction(inst analyzer.Instruction) {
	if handler, ok := b.direct.Lookup(inst.Op); ok {
		b.emit(record.Record{Fn: handler, Data: uint64(inst.Word)})
		return
	}
	sem, _, ok := b.lib.GetInterpreterOp(inst.Word)
	var thunk record.ThunkFunc
	if ok {
		thunk = record.ThunkFunc(sem)
	}
	b.emit(record.Record{Fn: indirectHandler, Data: uint64(inst.Word), Thunk: thunk})
}

func (b *Builder) emit(r record.Record) int { return b.arena.Append(r) }

// Package analyzer is the out-of-scope "analyzer" collaborator the
// core consumes when building a block: given a guest memory view and
// a starting address, it walks instructions forward and classifies
// each one with the flags the builder needs to decide which guard
// records to emit (see core's Builder).
//
// The reference implementation here is a straight-line linear scan —
// it stops at the first block-ending instruction (any branch or sc),
// the first unmapped or unrecognized word, or the fixed
// MaxBlockInstructions cap, mirroring how gameboy-emulator's CPU.Step walks one
// instruction at a time off of a flat memory array (internal/memory.MMU).
package analyzer

import "threadedppc/internal/interpreter"

// GuestMemory is the minimal read surface the analyzer and the core
// need over the guest's instruction memory. It is intentionally
// narrower than a full MMU: word-aligned 32-bit fetches only.
type GuestMemory interface {
	FetchInstruction(addr uint32) (word uint32, ok bool)
}

// Instruction is one decoded step of a block, annotated with the
// flags the builder needs to decide guard placement.
type Instruction struct {
	Address uint32
	Word    uint32
	Op      interpreter.OpcodeID

	// EndsBlock is true for instructions that terminate the basic
	// block: branches and the syscall trap.
	EndsBlock bool

	// IsBranch is true for any branch instruction (both conditional
	// and unconditional). CheckIdle placement reads IsIdleLoop, not
	// this flag.
	IsBranch bool

	// UsesFPU is true for any floating point instruction, triggering
	// a CheckFPU guard ahead of it.
	UsesFPU bool

	// IsLoadStore is true for LWZ/STW-class instructions, triggering a
	// CheckDSI guard after it when memory checking is active.
	IsLoadStore bool

	// MayRaiseProgramException is true for instructions whose execution
	// can raise a synchronous program exception that this instruction's
	// own guard, not the block's end-of-block accounting, must service:
	// trap-immediate and floating-point arithmetic/comparison ops.
	// Placement of the CheckPE guard that tests this is gated further
	// by the config's FP-exception policy for the instruction's address.
	MayRaiseProgramException bool

	// IsIdleLoop is true when this instruction is an unconditional
	// branch whose target is its own block's start address — the
	// analyzer's guess at "the guest is spinning," which the builder
	// turns into a CheckIdle record. The instructions between the
	// block start and the branch are not inspected.
	IsIdleLoop bool
}

// BlockMeta summarizes one analyzed block: its instructions plus
// block-wide aggregate flags ("does this block use the FPU at all").
// The core's builder places guards from the per-instruction flags and
// does not read the aggregates.
type BlockMeta struct {
	StartAddress uint32
	Instructions []Instruction
	UsesFPU      bool
	HasLoadStore bool
}

// Analyzer turns a guest address into an analyzed, not-yet-built
// block. It never mutates guest state and never runs an instruction's
// semantic — only interpreter.Library's decode path is used, strictly
// for classification.
type Analyzer interface {
	Analyze(mem GuestMemory, lib interpreter.Library, startAddress uint32) (BlockMeta, error)
}

// MaxBlockInstructions bounds a linear scan so a block without a
// terminating branch (e.g. a corrupt guest image) cannot analyze
// forever.
const MaxBlockInstructions = 256

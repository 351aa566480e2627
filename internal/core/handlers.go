package core

import (
	"threadedppc/internal/interpreter"
	"threadedppc/internal/ppc"
	"threadedppc/internal/record"
)

// The handlers in this file are collaborator-independent: they close
// only over ctx and a record's own Data/Thunk, never over a Runtime.
// Keeping them free functions (rather than Runtime methods) means the
// record package's HandlerFunc signature never needs a third
// "collaborators" parameter, which keeps record a leaf package.

// Return is the terminal handler every chain ends with. It always
// halts.
func Return(_ []record.Record, _ int, _ *ppc.CoreContext) (int, bool) {
	return 0, true
}

// WritePC reports the current instruction's address to the guest
// state ahead of any guard that might abort the chain, so an exception
// raised by that guard redirects from the right faulting address
// rather than from wherever PC was left by the previous instruction.
// Data carries that address A: pc <- A, npc <- A+4.
func WritePC(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	address := uint32(chain[i].Data)
	ctx.PC = address
	ctx.NPC = address + 4
	return i + 1, false
}

// WriteBrokenBlockNPC forces NPC to this record's Data operand — the
// address immediately after a broken (not fully analyzed) block's
// last instruction, emitted by the builder's broken-block trailer so
// execution resumes at the right address even though the block ended
// early.
func WriteBrokenBlockNPC(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	ctx.NPC = uint32(chain[i].Data)
	return i + 1, false
}

// CheckFPU aborts the chain into the FPU-unavailable exception vector
// if MSR.FP is clear. Data carries the cumulative inclusive cycle
// count consumed by the block up to and including the instruction
// this guard protects, the way every guard's Data does, so an abort
// here still charges the right amount of downcount before the block's
// EndBlock accounting would have run.
func CheckFPU(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	if ctx.FPUEnabled() {
		return i + 1, false
	}
	ctx.RequestException(ppc.ExceptionFPUUnavailable)
	ctx.Downcount -= int32(chain[i].Data)
	ppc.CheckExceptions(ctx)
	return 0, true
}

// CheckDSI aborts the chain if a load/store just raised a DSI
// exception. It runs after the instruction it protects, per the
// ordering rule that load/store guards run after their instruction.
func CheckDSI(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	if !ctx.HasException(ppc.ExceptionDSI) {
		return i + 1, false
	}
	ctx.Downcount -= int32(chain[i].Data)
	ppc.CheckExceptions(ctx)
	return 0, true
}

// CheckPE (program exception) aborts the chain if the instruction it
// protects raised ExceptionProgram. It follows any instruction flagged
// MayRaiseProgramException whose address the config's FP-exception
// policy says to guard — trap-immediate and floating-point arithmetic
// and comparison ops.
func CheckPE(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	if !ctx.HasException(ppc.ExceptionProgram) {
		return i + 1, false
	}
	ctx.Downcount -= int32(chain[i].Data)
	ppc.CheckExceptions(ctx)
	return 0, true
}

// makeDirectHandler monomorphizes one interpreter semantic into a
// handler record: Data carries the raw opcode word, so the closure
// only needs to capture the semantic function itself. This is the
// threaded-code core's "Direct" dispatch kind.
func makeDirectHandler(sem interpreter.Semantic) record.HandlerFunc {
	return func(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
		word := uint32(chain[i].Data)
		if err := sem(ctx, word); err != nil {
			ctx.RequestException(ppc.ExceptionProgram)
		}
		return i + 1, false
	}
}

// indirectHandler is the single generic "Indirect" dispatch kind: it
// runs whatever thunk the record carries against the record's own
// operand word, for opcodes the interpreter library did not curate
// into the direct set.
func indirectHandler(chain []record.Record, i int, ctx *ppc.CoreContext) (int, bool) {
	r := chain[i]
	word := uint32(r.Data)
	if r.Thunk == nil {
		ctx.RequestException(ppc.ExceptionProgram)
		return i + 1, false
	}
	if err := r.Thunk(ctx, word); err != nil {
		ctx.RequestException(ppc.ExceptionProgram)
	}
	return i + 1, false
}

package analyzer

import (
	"fmt"

	"threadedppc/internal/interpreter"
)

// LinearAnalyzer is the reference Analyzer: a straight-line scan that
// stops at the first control-flow instruction, the first unrecognized
// word, or MaxBlockInstructions, whichever comes first.
type LinearAnalyzer struct{}

// NewLinearAnalyzer returns the default Analyzer.
func NewLinearAnalyzer() *LinearAnalyzer { return &LinearAnalyzer{} }

// Analyze implements Analyzer.
func (LinearAnalyzer) Analyze(mem GuestMemory, lib interpreter.Library, startAddress uint32) (BlockMeta, error) {
	meta := BlockMeta{StartAddress: startAddress}
	addr := startAddress

	for i := 0; i < MaxBlockInstructions; i++ {
		word, ok := mem.FetchInstruction(addr)
		if !ok {
			return meta, fmt.Errorf("analyzer: unmapped fetch at 0x%08X", addr)
		}

		sem, op, ok := lib.GetInterpreterOp(word)
		if !ok || sem == nil {
			return meta, fmt.Errorf("analyzer: unrecognized instruction 0x%08X at 0x%08X", word, addr)
		}

		inst := Instruction{Address: addr, Word: word, Op: op}
		classify(&inst, startAddress)

		meta.Instructions = append(meta.Instructions, inst)
		if inst.UsesFPU {
			meta.UsesFPU = true
		}
		if inst.IsLoadStore {
			meta.HasLoadStore = true
		}

		if inst.EndsBlock {
			return meta, nil
		}
		addr += 4
	}

	return meta, fmt.Errorf("analyzer: block at 0x%08X exceeded %d instructions without terminating", startAddress, MaxBlockInstructions)
}

// classify fills in the boolean flags for one decoded instruction. It
// is pure classification — no semantic is ever invoked.
func classify(inst *Instruction, blockStart uint32) {
	switch inst.Op {
	case interpreter.OpB:
		inst.EndsBlock = true
		inst.IsBranch = true
		inst.IsIdleLoop = isBackwardSelfBranch(inst.Word, inst.Address, blockStart)
	case interpreter.OpBC, interpreter.OpBCLR:
		inst.EndsBlock = true
		inst.IsBranch = true
	case interpreter.OpSC:
		inst.EndsBlock = true
	case interpreter.OpTWI:
		// A trap that does not fire leaves the block to continue
		// straight-line, so unlike a branch it does not end the block;
		// its program exception (if any) is serviced by the per-
		// instruction CheckPE guard instead.
		inst.MayRaiseProgramException = true
	case interpreter.OpFADD, interpreter.OpFADDS, interpreter.OpFSUB,
		interpreter.OpFMUL, interpreter.OpFDIV, interpreter.OpFCMPO, interpreter.OpFCMPU:
		inst.UsesFPU = true
		inst.MayRaiseProgramException = true
	case interpreter.OpLWZ, interpreter.OpSTW:
		inst.IsLoadStore = true
	}
}

// isBackwardSelfBranch recognizes an idle loop as an unconditional
// branch whose target is the block's own start address, whatever
// instructions precede it in the block. Register dataflow across the
// loop body is not inspected.
func isBackwardSelfBranch(word uint32, addr uint32, blockStart uint32) bool {
	disp := int32(word&0x03FFFFFF) * 4
	if word&0x02000000 != 0 {
		disp = int32(word|^uint32(0x03FFFFFF)) * 4
	}
	target := uint32(int32(addr) + disp)
	return target == blockStart
}

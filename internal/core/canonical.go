package core

import "threadedppc/internal/interpreter"

// canonicalEncodingFor returns one representative instruction word for
// each curated opcode, used only to probe a Library's decode path when
// building the DirectTable. Operand fields are irrelevant here — only
// the opcode identity bits matter, since BuildDirectTable discards the
// probe word and keeps just the resolved Semantic.
func canonicalEncodingFor(op interpreter.OpcodeID) (uint32, bool) {
	switch op {
	case interpreter.OpADDI:
		return interpreter.EncodeADDI(0, 0, 0), true
	case interpreter.OpADD:
		return interpreter.EncodeADD(0, 0, 0), true
	case interpreter.OpSUBF:
		return interpreter.EncodeSUBF(0, 0, 0), true
	case interpreter.OpAND:
		return interpreter.EncodeAND(0, 0, 0), true
	case interpreter.OpOR:
		return interpreter.EncodeOR(0, 0, 0), true
	case interpreter.OpXOR:
		return interpreter.EncodeXOR(0, 0, 0), true
	case interpreter.OpSLW:
		return interpreter.EncodeSLW(0, 0, 0), true
	case interpreter.OpSRW:
		return interpreter.EncodeSRW(0, 0, 0), true
	case interpreter.OpRLWINM:
		return interpreter.EncodeRLWINM(0, 0, 0), true
	case interpreter.OpCMP:
		return interpreter.EncodeCMP(0, 0), true
	case interpreter.OpCMPI:
		return interpreter.EncodeCMPI(0, 0), true
	case interpreter.OpTWI:
		return interpreter.EncodeTWI(0, 0), true
	case interpreter.OpB:
		return interpreter.EncodeB(0), true
	case interpreter.OpBC:
		return interpreter.EncodeBC(0, 0, 0), true
	case interpreter.OpBCLR:
		return interpreter.EncodeBCLR(), true
	case interpreter.OpSC:
		return interpreter.EncodeSC(), true
	case interpreter.OpFADD:
		return interpreter.EncodeFADD(0, 0, 0), true
	case interpreter.OpFADDS:
		return interpreter.EncodeFADDS(0, 0, 0), true
	case interpreter.OpFSUB:
		return interpreter.EncodeFSUB(0, 0, 0), true
	case interpreter.OpFMUL:
		return interpreter.EncodeFMUL(0, 0, 0), true
	case interpreter.OpFDIV:
		return interpreter.EncodeFDIV(0, 0, 0), true
	case interpreter.OpFCMPO:
		return interpreter.EncodeFCMPO(0, 0), true
	case interpreter.OpFCMPU:
		return interpreter.EncodeFCMPU(0, 0), true
	case interpreter.OpLWZ:
		return interpreter.EncodeLWZ(0, 0, 0), true
	case interpreter.OpSTW:
		return interpreter.EncodeSTW(0, 0, 0), true
	default:
		return 0, false
	}
}

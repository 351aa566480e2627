package interpreter

// Instruction words use a simplified fixed layout, loosely modeled on
// PowerPC's primary/extended-opcode convention:
//
//	bits [31:26] primary opcode
//	bits [25:21] rD / rS / crfD / BO
//	bits [20:16] rA / BI
//	bits [15:11] rB
//	bits [10:1]  extended opcode (X-form)
//	bits [15:0]  16-bit immediate (D-form)
//	bits [25:0]  26-bit signed word-displacement (I-form, used by B)
//	bits [15:2]  14-bit signed word-displacement (B-form, used by BC)
//
// This is not a faithful PowerPC decoder — the analyzer and
// interpreter are reference collaborators, not a real decoder — but it is
// enough encoding fidelity to build and execute real-looking blocks
// end to end.
const (
	primaryADDI  = 14
	primaryTWI   = 3
	primaryCMPI  = 11
	primaryRLWINM = 21
	primaryB     = 18
	primaryBC    = 16
	primarySC    = 17
	primaryLWZ   = 32
	primarySTW   = 36
	primaryXO    = 31 // integer X/XO-form
	primaryBCLR  = 19
	primaryFPS   = 59 // single-precision FP
	primaryFPD   = 63 // double-precision FP
)

const (
	xoADD   = 266
	xoSUBF  = 40
	xoAND   = 28
	xoOR    = 444
	xoXOR   = 316
	xoSLW   = 24
	xoSRW   = 536
	xoCMP   = 0
	xoBCLR  = 16

	xoFADD  = 21
	xoFSUB  = 20
	xoFMUL  = 25
	xoFDIV  = 18
	xoFCMPO = 32
	xoFCMPU = 0
)

func primaryOf(word uint32) uint32 { return word >> 26 }
func field1(word uint32) uint32    { return (word >> 21) & 0x1F }
func field2(word uint32) uint32    { return (word >> 16) & 0x1F }
func field3(word uint32) uint32    { return (word >> 11) & 0x1F }
func extOp(word uint32) uint32     { return (word >> 1) & 0x3FF }
func simm16(word uint32) int32     { return int32(int16(word & 0xFFFF)) }
func disp24(word uint32) int32 {
	v := word & 0x03FFFFFF
	if v&0x02000000 != 0 {
		return int32(v|^uint32(0x03FFFFFF)) * 4
	}
	return int32(v) * 4
}

// decodeOp maps a raw word to its opcode identity without running its
// effect — used by both the reference analyzer (to classify flags) and
// GetInterpreterOp (to resolve a semantic).
func decodeOp(word uint32) OpcodeID {
	switch primaryOf(word) {
	case primaryADDI:
		return OpADDI
	case primaryTWI:
		return OpTWI
	case primaryCMPI:
		return OpCMPI
	case primaryRLWINM:
		return OpRLWINM
	case primaryB:
		return OpB
	case primaryBC:
		return OpBC
	case primarySC:
		return OpSC
	case primaryLWZ:
		return OpLWZ
	case primarySTW:
		return OpSTW
	case primaryBCLR:
		if extOp(word) == xoBCLR {
			return OpBCLR
		}
	case primaryXO:
		switch extOp(word) {
		case xoADD:
			return OpADD
		case xoSUBF:
			return OpSUBF
		case xoAND:
			return OpAND
		case xoOR:
			return OpOR
		case xoXOR:
			return OpXOR
		case xoSLW:
			return OpSLW
		case xoSRW:
			return OpSRW
		case xoCMP:
			return OpCMP
		}
	case primaryFPS:
		if extOp(word) == xoFADD {
			return OpFADDS
		}
	case primaryFPD:
		switch extOp(word) {
		case xoFADD:
			return OpFADD
		case xoFSUB:
			return OpFSUB
		case xoFMUL:
			return OpFMUL
		case xoFDIV:
			return OpFDIV
		case xoFCMPO:
			return OpFCMPO
		case xoFCMPU:
			return OpFCMPU
		}
	}
	return OpInvalid
}

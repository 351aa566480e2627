package interpreter

import (
	"fmt"

	"threadedppc/internal/ppc"
)

// Each semantic below mirrors the teacher's one-function-per-opcode
// style (see CPU.INC_A and friends in the retrieved gameboy-emulator
// sources): read operands out of the register file, compute, write
// back, done. Branches write NPC rather than PC directly — EndBlock
// commits PC <- NPC once the emitted trailer runs.

func semADDI(ctx *ppc.CoreContext, word uint32) error {
	rd, ra := field1(word), field2(word)
	var base uint32
	if ra != 0 {
		base = ctx.GPR[ra]
	}
	ctx.GPR[rd] = base + uint32(simm16(word))
	return nil
}

func semADD(ctx *ppc.CoreContext, word uint32) error {
	rd, ra, rb := field1(word), field2(word), field3(word)
	ctx.GPR[rd] = ctx.GPR[ra] + ctx.GPR[rb]
	return nil
}

func semSUBF(ctx *ppc.CoreContext, word uint32) error {
	rd, ra, rb := field1(word), field2(word), field3(word)
	ctx.GPR[rd] = ctx.GPR[rb] - ctx.GPR[ra]
	return nil
}

func semAND(ctx *ppc.CoreContext, word uint32) error {
	rs, ra, rb := field1(word), field2(word), field3(word)
	ctx.GPR[ra] = ctx.GPR[rs] & ctx.GPR[rb]
	return nil
}

func semOR(ctx *ppc.CoreContext, word uint32) error {
	rs, ra, rb := field1(word), field2(word), field3(word)
	ctx.GPR[ra] = ctx.GPR[rs] | ctx.GPR[rb]
	return nil
}

func semXOR(ctx *ppc.CoreContext, word uint32) error {
	rs, ra, rb := field1(word), field2(word), field3(word)
	ctx.GPR[ra] = ctx.GPR[rs] ^ ctx.GPR[rb]
	return nil
}

func semSLW(ctx *ppc.CoreContext, word uint32) error {
	rs, ra, rb := field1(word), field2(word), field3(word)
	shift := ctx.GPR[rb] & 0x3F
	if shift >= 32 {
		ctx.GPR[ra] = 0
	} else {
		ctx.GPR[ra] = ctx.GPR[rs] << shift
	}
	return nil
}

func semSRW(ctx *ppc.CoreContext, word uint32) error {
	rs, ra, rb := field1(word), field2(word), field3(word)
	shift := ctx.GPR[rb] & 0x3F
	if shift >= 32 {
		ctx.GPR[ra] = 0
	} else {
		ctx.GPR[ra] = ctx.GPR[rs] >> shift
	}
	return nil
}

func semRLWINM(ctx *ppc.CoreContext, word uint32) error {
	rs, ra := field1(word), field2(word)
	shift := field3(word) & 0x1F
	ctx.GPR[ra] = (ctx.GPR[rs] << shift) | (ctx.GPR[rs] >> (32 - shift))
	return nil
}

func semCMP(ctx *ppc.CoreContext, word uint32) error {
	ra, rb := field2(word), field3(word)
	ctx.CR = compare(int32(ctx.GPR[ra]), int32(ctx.GPR[rb]))
	return nil
}

func semCMPI(ctx *ppc.CoreContext, word uint32) error {
	ra := field2(word)
	ctx.CR = compare(int32(ctx.GPR[ra]), simm16(word))
	return nil
}

func compare(a, b int32) uint32 {
	switch {
	case a < b:
		return 0x8
	case a > b:
		return 0x4
	default:
		return 0x2
	}
}

func semTWI(ctx *ppc.CoreContext, word uint32) error {
	ra := field2(word)
	if int32(ctx.GPR[ra]) == simm16(word) {
		ctx.RequestException(ppc.ExceptionProgram)
	}
	return nil
}

func semB(ctx *ppc.CoreContext, word uint32) error {
	ctx.NPC = uint32(int32(ctx.PC) + disp24(word))
	return nil
}

func semBC(ctx *ppc.CoreContext, word uint32) error {
	bo, bi := field1(word), field2(word)
	taken := bo&0x10 != 0 || branchConditionMet(ctx.CR, bi, bo&0x8 != 0)
	if taken {
		// BC carries a 14-bit word displacement in bits [15:2].
		ctx.NPC = uint32(int32(ctx.PC) + int32(int16(word&0xFFFC)))
	}
	return nil
}

func branchConditionMet(cr uint32, bi uint32, wantSet bool) bool {
	bit := cr&(1<<(31-bi)) != 0
	return bit == wantSet
}

func semBCLR(ctx *ppc.CoreContext, _ uint32) error {
	ctx.NPC = ctx.LR
	return nil
}

func semSC(ctx *ppc.CoreContext, _ uint32) error {
	ctx.RequestException(ppc.ExceptionSyscall)
	return nil
}

func semFADD(ctx *ppc.CoreContext, word uint32) error {
	fd, fa, fb := field1(word), field2(word), field3(word)
	ctx.FPR[fd] = ctx.FPR[fa] + ctx.FPR[fb]
	return nil
}

func semFADDS(ctx *ppc.CoreContext, word uint32) error {
	fd, fa, fb := field1(word), field2(word), field3(word)
	ctx.FPR[fd] = float64(float32(ctx.FPR[fa] + ctx.FPR[fb]))
	return nil
}

func semFSUB(ctx *ppc.CoreContext, word uint32) error {
	fd, fa, fb := field1(word), field2(word), field3(word)
	ctx.FPR[fd] = ctx.FPR[fa] - ctx.FPR[fb]
	return nil
}

func semFMUL(ctx *ppc.CoreContext, word uint32) error {
	fd, fa, fb := field1(word), field2(word), field3(word)
	ctx.FPR[fd] = ctx.FPR[fa] * ctx.FPR[fb]
	return nil
}

func semFDIV(ctx *ppc.CoreContext, word uint32) error {
	fd, fa, fb := field1(word), field2(word), field3(word)
	if ctx.FPR[fb] == 0 {
		return fmt.Errorf("fdiv: division by zero at fr%d", fb)
	}
	ctx.FPR[fd] = ctx.FPR[fa] / ctx.FPR[fb]
	return nil
}

func semFCMPO(ctx *ppc.CoreContext, word uint32) error {
	fa, fb := field2(word), field3(word)
	ctx.CR = compareFloat(ctx.FPR[fa], ctx.FPR[fb])
	return nil
}

func semFCMPU(ctx *ppc.CoreContext, word uint32) error {
	fa, fb := field2(word), field3(word)
	ctx.CR = compareFloat(ctx.FPR[fa], ctx.FPR[fb])
	return nil
}

func compareFloat(a, b float64) uint32 {
	switch {
	case a < b:
		return 0x8
	case a > b:
		return 0x4
	default:
		return 0x2
	}
}

func semLWZ(ctx *ppc.CoreContext, word uint32) error {
	ra := field2(word)
	var base uint32
	if ra != 0 {
		base = ctx.GPR[ra]
	}
	addr := base + uint32(simm16(word))
	if addr >= 0x80000000 {
		ctx.RequestException(ppc.ExceptionDSI)
		return nil
	}
	rd := field1(word)
	ctx.GPR[rd] = addr // reference semantic: no real memory backing
	return nil
}

func semSTW(ctx *ppc.CoreContext, word uint32) error {
	ra := field2(word)
	var base uint32
	if ra != 0 {
		base = ctx.GPR[ra]
	}
	addr := base + uint32(simm16(word))
	if addr >= 0x80000000 {
		ctx.RequestException(ppc.ExceptionDSI)
	}
	return nil
}

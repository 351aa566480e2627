package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadedppc/internal/ppc"
)

func TestSemADDI(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1] = 10
	require.NoError(t, semADDI(ctx, EncodeADDI(3, 1, -3)))
	assert.Equal(t, uint32(7), ctx.GPR[3])
}

func TestSemADD(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1], ctx.GPR[2] = 2, 3
	require.NoError(t, semADD(ctx, EncodeADD(3, 1, 2)))
	assert.Equal(t, uint32(5), ctx.GPR[3])
}

func TestSemSUBF(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1], ctx.GPR[2] = 2, 10
	require.NoError(t, semSUBF(ctx, EncodeSUBF(3, 1, 2)))
	assert.Equal(t, uint32(8), ctx.GPR[3], "subf rD,rA,rB computes rB - rA")
}

func TestSemCMP_SetsCRForLessGreaterEqual(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1], ctx.GPR[2] = 1, 2
	require.NoError(t, semCMP(ctx, EncodeCMP(1, 2)))
	assert.Equal(t, uint32(0x8), ctx.CR)

	ctx.GPR[1], ctx.GPR[2] = 2, 1
	require.NoError(t, semCMP(ctx, EncodeCMP(1, 2)))
	assert.Equal(t, uint32(0x4), ctx.CR)

	ctx.GPR[1], ctx.GPR[2] = 5, 5
	require.NoError(t, semCMP(ctx, EncodeCMP(1, 2)))
	assert.Equal(t, uint32(0x2), ctx.CR)
}

func TestSemTWI_RaisesProgramExceptionOnMatch(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1] = 5
	require.NoError(t, semTWI(ctx, EncodeTWI(1, 5)))
	assert.True(t, ctx.HasException(ppc.ExceptionProgram))
}

func TestSemTWI_NoExceptionWhenNoMatch(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1] = 1
	require.NoError(t, semTWI(ctx, EncodeTWI(1, 5)))
	assert.False(t, ctx.HasException(ppc.ExceptionProgram))
}

func TestSemB_WritesNPCNotPC(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.PC = 0x1000
	require.NoError(t, semB(ctx, EncodeB(16)))
	assert.Equal(t, uint32(0x1010), ctx.NPC)
	assert.Equal(t, uint32(0x1000), ctx.PC)
}

func TestSemBC_TakenWhenUnconditionalBit(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.PC = 0x2000
	require.NoError(t, semBC(ctx, EncodeBC(0x10, 0, 32)))
	assert.Equal(t, uint32(0x2020), ctx.NPC)
}

func TestSemBC_NotTakenWhenConditionFails(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.PC = 0x3000
	ctx.NPC = 0x3000
	ctx.CR = 0 // bit BI clear
	require.NoError(t, semBC(ctx, EncodeBC(0x08, 0, 32))) // wantSet=true, bit clear -> not taken
	assert.Equal(t, uint32(0x3000), ctx.NPC)
}

func TestSemBCLR_WritesLR(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.LR = 0x4000
	require.NoError(t, semBCLR(ctx, EncodeBCLR()))
	assert.Equal(t, uint32(0x4000), ctx.NPC)
}

func TestSemSC_RaisesSyscall(t *testing.T) {
	ctx := ppc.NewCoreContext()
	require.NoError(t, semSC(ctx, EncodeSC()))
	assert.True(t, ctx.HasException(ppc.ExceptionSyscall))
}

func TestSemFDIV_DivideByZeroReturnsError(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.FPR[1], ctx.FPR[2] = 1.0, 0.0
	err := semFDIV(ctx, EncodeFDIV(3, 1, 2))
	assert.Error(t, err)
}

func TestSemFDIV_Normal(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.FPR[1], ctx.FPR[2] = 10.0, 2.0
	require.NoError(t, semFDIV(ctx, EncodeFDIV(3, 1, 2)))
	assert.Equal(t, 5.0, ctx.FPR[3])
}

func TestSemSTW_RaisesDSIOnHighAddress(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1] = 0x80000000
	require.NoError(t, semSTW(ctx, EncodeSTW(3, 1, 0)))
	assert.True(t, ctx.HasException(ppc.ExceptionDSI))
}

func TestSemLWZ_NoExceptionForLowAddress(t *testing.T) {
	ctx := ppc.NewCoreContext()
	ctx.GPR[1] = 0x1000
	require.NoError(t, semLWZ(ctx, EncodeLWZ(3, 1, 0)))
	assert.False(t, ctx.HasException(ppc.ExceptionDSI))
}

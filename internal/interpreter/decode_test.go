package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOp_RecognizesEveryEncodedOpcode(t *testing.T) {
	cases := []struct {
		name string
		word uint32
		want OpcodeID
	}{
		{"addi", EncodeADDI(3, 0, 1), OpADDI},
		{"add", EncodeADD(3, 1, 2), OpADD},
		{"subf", EncodeSUBF(3, 1, 2), OpSUBF},
		{"and", EncodeAND(3, 1, 2), OpAND},
		{"or", EncodeOR(3, 1, 2), OpOR},
		{"xor", EncodeXOR(3, 1, 2), OpXOR},
		{"slw", EncodeSLW(3, 1, 2), OpSLW},
		{"srw", EncodeSRW(3, 1, 2), OpSRW},
		{"rlwinm", EncodeRLWINM(1, 2, 4), OpRLWINM},
		{"cmp", EncodeCMP(1, 2), OpCMP},
		{"cmpi", EncodeCMPI(1, 5), OpCMPI},
		{"twi", EncodeTWI(1, 5), OpTWI},
		{"b", EncodeB(0), OpB},
		{"bc", EncodeBC(0, 0, 0), OpBC},
		{"bclr", EncodeBCLR(), OpBCLR},
		{"sc", EncodeSC(), OpSC},
		{"fadd", EncodeFADD(1, 2, 3), OpFADD},
		{"fadds", EncodeFADDS(1, 2, 3), OpFADDS},
		{"fsub", EncodeFSUB(1, 2, 3), OpFSUB},
		{"fmul", EncodeFMUL(1, 2, 3), OpFMUL},
		{"fdiv", EncodeFDIV(1, 2, 3), OpFDIV},
		{"fcmpo", EncodeFCMPO(1, 2), OpFCMPO},
		{"fcmpu", EncodeFCMPU(1, 2), OpFCMPU},
		{"lwz", EncodeLWZ(3, 1, 4), OpLWZ},
		{"stw", EncodeSTW(3, 1, 4), OpSTW},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, decodeOp(c.word))
		})
	}
}

func TestDecodeOp_InvalidWord(t *testing.T) {
	assert.Equal(t, OpInvalid, decodeOp(0))
}

func TestDisp24_SignExtends(t *testing.T) {
	word := EncodeB(-8)
	assert.Equal(t, int32(-8), disp24(word))
}

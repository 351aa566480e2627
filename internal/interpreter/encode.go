package interpreter

// The Encode* helpers build instruction words in this package's
// simplified layout (see decode.go). They exist so tests and the
// demo CLI can assemble realistic-looking blocks without hand-rolling
// bit patterns inline, the way the teacher's tests build ROM bytes
// with small helper functions (see cartridge_test.go's createTestROM).

func field(v uint32, bits uint) uint32 { return v & ((1 << bits) - 1) }

func EncodeADDI(rd, ra uint32, simm int32) uint32 {
	return primaryADDI<<26 | field(rd, 5)<<21 | field(ra, 5)<<16 | field(uint32(simm), 16)
}

func encodeXO(primary, rd, ra, rb, xo uint32) uint32 {
	return primary<<26 | field(rd, 5)<<21 | field(ra, 5)<<16 | field(rb, 5)<<11 | field(xo, 10)<<1
}

func EncodeADD(rd, ra, rb uint32) uint32  { return encodeXO(primaryXO, rd, ra, rb, xoADD) }
func EncodeSUBF(rd, ra, rb uint32) uint32 { return encodeXO(primaryXO, rd, ra, rb, xoSUBF) }
func EncodeAND(rs, ra, rb uint32) uint32  { return encodeXO(primaryXO, rs, ra, rb, xoAND) }
func EncodeOR(rs, ra, rb uint32) uint32   { return encodeXO(primaryXO, rs, ra, rb, xoOR) }
func EncodeXOR(rs, ra, rb uint32) uint32  { return encodeXO(primaryXO, rs, ra, rb, xoXOR) }
func EncodeSLW(rs, ra, rb uint32) uint32  { return encodeXO(primaryXO, rs, ra, rb, xoSLW) }
func EncodeSRW(rs, ra, rb uint32) uint32  { return encodeXO(primaryXO, rs, ra, rb, xoSRW) }
func EncodeCMP(ra, rb uint32) uint32      { return encodeXO(primaryXO, 0, ra, rb, xoCMP) }

func EncodeRLWINM(rs, ra, shift uint32) uint32 {
	return primaryRLWINM<<26 | field(rs, 5)<<21 | field(ra, 5)<<16 | field(shift, 5)<<11
}

func EncodeCMPI(ra uint32, simm int32) uint32 {
	return primaryCMPI<<26 | field(0, 5)<<21 | field(ra, 5)<<16 | field(uint32(simm), 16)
}

func EncodeTWI(ra uint32, simm int32) uint32 {
	return primaryTWI<<26 | field(0, 5)<<21 | field(ra, 5)<<16 | field(uint32(simm), 16)
}

func EncodeB(displacementWords int32) uint32 {
	return primaryB<<26 | field(uint32(displacementWords/4), 26)
}

func EncodeBC(bo, bi uint32, displacementWords int32) uint32 {
	return primaryBC<<26 | field(bo, 5)<<21 | field(bi, 5)<<16 | field(uint32(displacementWords/4), 14)<<2
}

func EncodeBCLR() uint32 {
	return encodeXO(primaryBCLR, 0x14, 0, 0, xoBCLR)
}

func EncodeSC() uint32 { return primarySC << 26 }

func encodeFP(primary, fd, fa, fb, xo uint32) uint32 {
	return primary<<26 | field(fd, 5)<<21 | field(fa, 5)<<16 | field(fb, 5)<<11 | field(xo, 10)<<1
}

func EncodeFADD(fd, fa, fb uint32) uint32  { return encodeFP(primaryFPD, fd, fa, fb, xoFADD) }
func EncodeFADDS(fd, fa, fb uint32) uint32 { return encodeFP(primaryFPS, fd, fa, fb, xoFADD) }
func EncodeFSUB(fd, fa, fb uint32) uint32  { return encodeFP(primaryFPD, fd, fa, fb, xoFSUB) }
func EncodeFMUL(fd, fa, fb uint32) uint32  { return encodeFP(primaryFPD, fd, fa, fb, xoFMUL) }
func EncodeFDIV(fd, fa, fb uint32) uint32  { return encodeFP(primaryFPD, fd, fa, fb, xoFDIV) }
func EncodeFCMPO(fa, fb uint32) uint32     { return encodeFP(primaryFPD, 0, fa, fb, xoFCMPO) }
func EncodeFCMPU(fa, fb uint32) uint32     { return encodeFP(primaryFPD, 0, fa, fb, xoFCMPU) }

func EncodeLWZ(rd, ra uint32, simm int32) uint32 {
	return primaryLWZ<<26 | field(rd, 5)<<21 | field(ra, 5)<<16 | field(uint32(simm), 16)
}

func EncodeSTW(rs, ra uint32, simm int32) uint32 {
	return primarySTW<<26 | field(rs, 5)<<21 | field(ra, 5)<<16 | field(uint32(simm), 16)
}

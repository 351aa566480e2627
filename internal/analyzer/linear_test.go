package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadedppc/internal/interpreter"
)

func TestLinearAnalyzer_StraightLineBlock(t *testing.T) {
	mem := NewFlatGuestMemory(0x1000, 0x40)
	mem.StoreInstruction(0x1000, interpreter.EncodeADDI(3, 0, 5))
	mem.StoreInstruction(0x1004, interpreter.EncodeADD(4, 3, 3))
	mem.StoreInstruction(0x1008, interpreter.EncodeB(0))

	lib := interpreter.NewReferenceLibrary()
	meta, err := NewLinearAnalyzer().Analyze(mem, lib, 0x1000)
	require.NoError(t, err)

	assert.Len(t, meta.Instructions, 3)
	assert.True(t, meta.Instructions[2].EndsBlock)
	assert.True(t, meta.Instructions[2].IsBranch)
	assert.False(t, meta.UsesFPU)
	assert.False(t, meta.HasLoadStore)
}

func TestLinearAnalyzer_DetectsFPUAndLoadStore(t *testing.T) {
	mem := NewFlatGuestMemory(0x2000, 0x40)
	mem.StoreInstruction(0x2000, interpreter.EncodeLWZ(3, 0, 4))
	mem.StoreInstruction(0x2004, interpreter.EncodeFADD(1, 2, 3))
	mem.StoreInstruction(0x2008, interpreter.EncodeBCLR())

	lib := interpreter.NewReferenceLibrary()
	meta, err := NewLinearAnalyzer().Analyze(mem, lib, 0x2000)
	require.NoError(t, err)

	assert.True(t, meta.UsesFPU)
	assert.True(t, meta.HasLoadStore)
}

func TestLinearAnalyzer_DetectsIdleLoop(t *testing.T) {
	mem := NewFlatGuestMemory(0x3000, 0x10)
	mem.StoreInstruction(0x3000, interpreter.EncodeB(0))

	lib := interpreter.NewReferenceLibrary()
	meta, err := NewLinearAnalyzer().Analyze(mem, lib, 0x3000)
	require.NoError(t, err)

	require.Len(t, meta.Instructions, 1)
	assert.True(t, meta.Instructions[0].IsIdleLoop)
}

func TestLinearAnalyzer_UnmappedFetch(t *testing.T) {
	mem := NewFlatGuestMemory(0x4000, 0x10)
	lib := interpreter.NewReferenceLibrary()
	_, err := NewLinearAnalyzer().Analyze(mem, lib, 0x9000)
	assert.Error(t, err)
}

func TestLinearAnalyzer_UnrecognizedInstruction(t *testing.T) {
	mem := NewFlatGuestMemory(0x5000, 0x10)
	mem.StoreInstruction(0x5000, 0xFFFFFFFF)
	lib := interpreter.NewReferenceLibrary()
	_, err := NewLinearAnalyzer().Analyze(mem, lib, 0x5000)
	assert.Error(t, err)
}

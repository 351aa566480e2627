package blockcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryIndex_InsertLookup(t *testing.T) {
	idx := NewInMemoryIndex()
	idx.Insert(BlockDescriptor{Address: 0x1000, EndAddress: 0x1010, ArenaStart: 0, ArenaEnd: 4})

	d, ok := idx.Lookup(0x1000)
	assert.True(t, ok)
	assert.Equal(t, 4, d.Len())

	_, ok = idx.Lookup(0x2000)
	assert.False(t, ok)
}

func TestInMemoryIndex_InvalidateRange(t *testing.T) {
	idx := NewInMemoryIndex()
	idx.Insert(BlockDescriptor{Address: 0x1000, EndAddress: 0x1010})
	idx.Insert(BlockDescriptor{Address: 0x2000, EndAddress: 0x2010})

	idx.InvalidateRange(0x1008, 0x1800)

	_, ok := idx.Lookup(0x1000)
	assert.False(t, ok, "overlapping block must be invalidated")

	_, ok = idx.Lookup(0x2000)
	assert.True(t, ok, "non-overlapping block must survive")
}

func TestInMemoryIndex_Clear(t *testing.T) {
	idx := NewInMemoryIndex()
	idx.Insert(BlockDescriptor{Address: 0x1000, EndAddress: 0x1010})
	idx.Insert(BlockDescriptor{Address: 0x2000, EndAddress: 0x2010})

	idx.Clear()

	assert.Equal(t, 0, idx.Len())
}

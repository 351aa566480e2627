package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"threadedppc/internal/record"
)

func TestArena_AppendAndSlice(t *testing.T) {
	a := NewArena(16)
	i0 := a.Append(record.Record{Data: 1})
	i1 := a.Append(record.Record{Data: 2})

	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, uint64(1), a.Slice()[0].Data)
}

func TestArena_Reset(t *testing.T) {
	a := NewArena(16)
	a.Append(record.Record{})
	a.Append(record.Record{})

	a.Reset()

	assert.Equal(t, 0, a.Len())
}

func TestArena_NearCapacity(t *testing.T) {
	a := NewArena(defaultSafetyMargin * 4)
	assert.False(t, a.NearCapacity())

	for i := 0; i < defaultSafetyMargin*3+1; i++ {
		a.Append(record.Record{})
	}

	assert.True(t, a.NearCapacity())
}

func TestArena_DefaultCapacity(t *testing.T) {
	a := NewArena(0)
	assert.Equal(t, 1<<20, cap(a.Slice()))
}

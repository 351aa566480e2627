package hle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"threadedppc/internal/ppc"
)

func TestRegistry_TryReplace(t *testing.T) {
	reg := NewRegistry()
	called := false
	idx := reg.Register(0x8000, Hook{
		Kind: KindReplace,
		Func: func(ctx *ppc.CoreContext) error {
			called = true
			ctx.GPR[3] = 42
			return nil
		},
	})

	gotIdx, ok := reg.TryReplace(0x8000)
	assert.True(t, ok)
	assert.Equal(t, idx, gotIdx)

	ctx := ppc.NewCoreContext()
	err := reg.Dispatch(gotIdx, ctx)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, uint32(42), ctx.GPR[3])
}

func TestRegistry_NonReplaceHookNotOffered(t *testing.T) {
	reg := NewRegistry()
	reg.Register(0x9000, Hook{Kind: KindStart, Func: func(ctx *ppc.CoreContext) error { return nil }})

	_, ok := reg.TryReplace(0x9000)
	assert.False(t, ok)
}

func TestRegistry_UnknownAddress(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.TryReplace(0xDEAD)
	assert.False(t, ok)
}

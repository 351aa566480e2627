package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"threadedppc/internal/ppc"
)

func TestWallClockScheduler_Advance(t *testing.T) {
	s := NewWallClockScheduler()
	ctx := ppc.NewCoreContext()
	s.Refill(ctx, 100)

	assert.False(t, s.Advance(ctx, 40))
	assert.Equal(t, int32(60), ctx.Downcount)

	assert.True(t, s.Advance(ctx, 70))
	assert.Equal(t, int32(-10), ctx.Downcount)
}

func TestWallClockScheduler_Idle(t *testing.T) {
	s := NewWallClockScheduler()
	ctx := ppc.NewCoreContext()
	s.Refill(ctx, 500)
	s.Idle(ctx)
	assert.Equal(t, int32(0), ctx.Downcount)
}

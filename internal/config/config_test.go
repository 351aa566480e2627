package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.False(t, c.NoBlockCache)
	assert.False(t, c.DebuggingEnabled)
	assert.True(t, c.MemcheckEnabled)
	assert.Equal(t, int32(200000), c.DefaultCycleBudget)
	assert.True(t, c.ShouldHandleFPException(0x1000))
}

func TestNew_Options(t *testing.T) {
	c := New(
		WithNoBlockCache(true),
		WithDebugging(true),
		WithMemcheck(false),
		WithCycleBudget(42),
		WithFPExceptionPolicy(func(pc uint32) bool { return pc == 0x8000 }),
	)

	assert.True(t, c.NoBlockCache)
	assert.True(t, c.DebuggingEnabled)
	assert.False(t, c.MemcheckEnabled)
	assert.Equal(t, int32(42), c.DefaultCycleBudget)
	assert.True(t, c.ShouldHandleFPException(0x8000))
	assert.False(t, c.ShouldHandleFPException(0x9000))
}

package ppc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestHasClearException(t *testing.T) {
	ctx := NewCoreContext()
	assert.False(t, ctx.HasException(ExceptionDSI))

	ctx.RequestException(ExceptionDSI)
	assert.True(t, ctx.HasException(ExceptionDSI))

	ctx.ClearException(ExceptionDSI)
	assert.False(t, ctx.HasException(ExceptionDSI))
}

func TestCheckExceptions_ServicesHighestPriorityFirst(t *testing.T) {
	ctx := NewCoreContext()
	ctx.RequestException(ExceptionProgram)
	ctx.RequestException(ExceptionSyscall)

	serviced := CheckExceptions(ctx)
	assert.True(t, serviced)
	assert.Equal(t, uint32(0x00000C00), ctx.PC, "syscall outranks program exception")
	assert.False(t, ctx.HasException(ExceptionSyscall))
	assert.True(t, ctx.HasException(ExceptionProgram), "lower-priority exception stays pending")
}

func TestCheckExceptions_NoneSetReturnsFalse(t *testing.T) {
	ctx := NewCoreContext()
	assert.False(t, CheckExceptions(ctx))
}

func TestCheckExceptions_SetsNPCAfterVector(t *testing.T) {
	ctx := NewCoreContext()
	ctx.RequestException(ExceptionDSI)
	CheckExceptions(ctx)
	assert.Equal(t, ctx.PC+4, ctx.NPC)
}

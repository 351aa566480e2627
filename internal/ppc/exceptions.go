package ppc

// Exceptions is a bitset of pending guest exceptions, generalized from
// the teacher's InterruptController IE/IF register-bitmask pattern:
// instead of enable/pending register pairs we carry a single "pending"
// word, since the PowerPC synchronous exceptions this core raises
// (ISI, DSI, PROGRAM, FPU_UNAVAILABLE) are not maskable by the guest
// the way peripheral interrupts are.
type Exceptions uint32

const (
	ExceptionSyscall Exceptions = 1 << iota
	ExceptionISI
	ExceptionDSI
	ExceptionProgram
	ExceptionFPUUnavailable
	ExceptionDecrementer
	ExceptionExternalInt
)

// checkOrder lists exceptions from highest to lowest priority, matching
// real PowerPC exception-priority conventions closely enough for a
// threaded-code core that only ever has one exception bit set at a
// time in practice.
var checkOrder = []Exceptions{
	ExceptionSyscall,
	ExceptionISI,
	ExceptionDSI,
	ExceptionProgram,
	ExceptionFPUUnavailable,
	ExceptionDecrementer,
	ExceptionExternalInt,
}

// vectors holds the guest address each exception redirects to.
var vectors = map[Exceptions]uint32{
	ExceptionSyscall:        0x00000C00,
	ExceptionISI:            0x00000400,
	ExceptionDSI:            0x00000300,
	ExceptionProgram:        0x00000700,
	ExceptionFPUUnavailable: 0x00000800,
	ExceptionDecrementer:    0x00000900,
	ExceptionExternalInt:    0x00000500,
}

// RequestException marks an exception pending.
func (c *CoreContext) RequestException(e Exceptions) {
	c.Exceptions |= e
}

// HasException reports whether an exception is pending.
func (c *CoreContext) HasException(e Exceptions) bool {
	return c.Exceptions&e != 0
}

// ClearException clears a pending exception.
func (c *CoreContext) ClearException(e Exceptions) {
	c.Exceptions &^= e
}

// CheckExceptions services the highest-priority pending exception by
// clearing it and redirecting PC/NPC to its vector. It reports whether
// an exception was serviced. Guard handlers call this synchronously:
// by the time it returns, PC/NPC already reflect the redirected flow.
func CheckExceptions(ctx *CoreContext) bool {
	for _, e := range checkOrder {
		if ctx.HasException(e) {
			ctx.ClearException(e)
			vector := vectors[e]
			ctx.PC = vector
			ctx.NPC = vector + 4
			return true
		}
	}
	return false
}

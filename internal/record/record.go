// Package record defines the uniform handler record that the
// threaded-code core threads control through. Every record pairs a
// handler with an immediate operand; a block is a contiguous run of
// records inside an Arena.
package record

import "threadedppc/internal/ppc"

// HandlerFunc is the signature every handler record carries. It is
// the dispatch-loop re-expression of the tail-threaded form described
// in the design notes: rather than tail-calling the next record, a
// handler returns the index of the next record to run (almost always
// i+1) and a halt flag. halt=true ends the chain — at chain end,
// after an exception/breakpoint guard fires, or after an end-of-block
// trailer with nothing left to run.
//
// chain is the arena slice the record lives in and i is this record's
// index within it; handlers that need their own operand read
// chain[i].Data.
type HandlerFunc func(chain []Record, i int, ctx *ppc.CoreContext) (next int, halt bool)

// ThunkFunc is the function-pointer payload carried by an Indirect
// record: the interpreter semantic resolved for the opcode, invoked
// with the raw opcode word.
type ThunkFunc func(ctx *ppc.CoreContext, word uint32) error

// Record is the uniform handler record. Data is an unsigned machine
// word holding whatever the handler's row in the handler table says
// it holds: a guest address, a raw opcode word, an HLE hook index, a
// cycle count, or an instruction count.
type Record struct {
	Fn    HandlerFunc
	Data  uint64
	Thunk ThunkFunc
}

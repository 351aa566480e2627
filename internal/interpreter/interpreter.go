// Package interpreter is the out-of-scope "interpreter library"
// collaborator the core consumes: given a raw opcode word it resolves
// the semantic function that implements it, and separately exposes
// the curated set of opcodes the core should specialize with a direct
// handler rather than an indirect one.
//
// The reference implementation in this package decodes a small,
// deliberately simplified instruction encoding loosely modeled on
// PowerPC's primary/extended opcode fields — enough to exercise every
// record kind the core builds, not a faithful ISA decoder.
package interpreter

import "threadedppc/internal/ppc"

// OpcodeID identifies a decoded instruction's semantic, independent of
// its raw encoding. The zero value, OpInvalid, means "no semantic
// resolved for this word."
type OpcodeID int

const (
	OpInvalid OpcodeID = iota

	OpADDI
	OpADD
	OpSUBF
	OpAND
	OpOR
	OpXOR
	OpSLW
	OpSRW
	OpRLWINM
	OpCMP
	OpCMPI
	OpTWI

	OpB
	OpBC
	OpBCLR
	OpSC

	OpFADD
	OpFADDS
	OpFSUB
	OpFMUL
	OpFDIV
	OpFCMPO
	OpFCMPU

	OpLWZ
	OpSTW
)

// Semantic implements one opcode's effect on the guest register file.
// It is the function pointer baked into a Direct record or carried as
// an Indirect record's thunk.
type Semantic func(ctx *ppc.CoreContext, word uint32) error

// Library resolves opcode words to semantics and names the curated
// subset that should be specialized as direct-dispatch handlers.
type Library interface {
	// GetInterpreterOp decodes word and returns its semantic function
	// and stable opcode identity. ok is false for words this library
	// does not recognize.
	GetInterpreterOp(word uint32) (sem Semantic, op OpcodeID, ok bool)

	// DirectOpcodes returns the curated, duplicate-free set of opcode
	// identities that warrant a specialized direct handler.
	DirectOpcodes() []OpcodeID
}

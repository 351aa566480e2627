package core

import (
	"sort"

	"threadedppc/internal/interpreter"
	"threadedppc/internal/record"
)

// directEntry pairs one curated opcode with its monomorphized handler.
type directEntry struct {
	op      interpreter.OpcodeID
	handler record.HandlerFunc
}

// DirectTable resolves an opcode identity to its specialized handler,
// built once per Library at startup and consulted by the builder for
// every instruction it emits. Entries are sorted by OpcodeID so
// Lookup can binary search rather than walk a map on the hot path.
type DirectTable struct {
	entries []directEntry
}

// BuildDirectTable monomorphizes lib's curated DirectOpcodes into
// handler closures, resolving each opcode's semantic once rather than
// re-resolving it on every block build.
func BuildDirectTable(lib interpreter.Library) (*DirectTable, error) {
	opcodes := lib.DirectOpcodes()
	entries := make([]directEntry, 0, len(opcodes))
	seen := make(map[interpreter.OpcodeID]bool, len(opcodes))

	for _, op := range opcodes {
		if seen[op] {
			continue // duplicate entries collapse to one handler
		}
		seen[op] = true

		sem, resolvedOp, ok := semanticForOpcode(lib, op)
		if !ok {
			continue
		}
		entries = append(entries, directEntry{op: resolvedOp, handler: makeDirectHandler(sem)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].op < entries[j].op })
	return &DirectTable{entries: entries}, nil
}

// semanticForOpcode resolves op's semantic by probing the library with
// a canonical encoding. The reference library's GetInterpreterOp takes
// a raw word rather than an OpcodeID, so the table is built indirectly
// by encoding a zeroed instruction of the wanted shape; callers that
// bring their own Library may instead implement a direct
// opcode->semantic resolution and are not required to route through
// this helper.
func semanticForOpcode(lib interpreter.Library, op interpreter.OpcodeID) (interpreter.Semantic, interpreter.OpcodeID, bool) {
	word, ok := canonicalEncodingFor(op)
	if !ok {
		return nil, interpreter.OpInvalid, false
	}
	return lib.GetInterpreterOp(word)
}

// Lookup finds op's direct handler via binary search over the sorted
// entries.
func (t *DirectTable) Lookup(op interpreter.OpcodeID) (record.HandlerFunc, bool) {
	lo, hi := 0, len(t.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.entries[mid].op < op {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.entries) && t.entries[lo].op == op {
		return t.entries[lo].handler, true
	}
	return nil, false
}

// Package hle is the out-of-scope "HLE table" collaborator: it lets
// the builder probe whether an address has a high-level-emulation
// hook installed, and lets the runtime dispatch to that hook's Go
// implementation in place of the interpreted instruction.
//
// The reference Registry here is grounded on gameboy-emulator's
// joypad/input registration pattern (a small keyed table of callbacks
// consulted on each relevant event) generalized from button state to
// guest address.
package hle

import "threadedppc/internal/ppc"

// Kind distinguishes how a hook participates in block building:
// Replace hooks are substituted wholesale for the interpreted
// instruction at their address, matching the source's
// "Direct<HLEFunction>" emission path. Start and End hooks can be
// registered, but TryReplace never reports them, so the builder emits
// no record for them and they are never dispatched.
type Kind int

const (
	KindStart Kind = iota
	KindEnd
	KindReplace
)

// Hook is one installed HLE callback. Func receives the same CoreContext
// the interpreted semantics would, and returns an error only for a
// condition the runtime should surface as a guest exception.
type Hook struct {
	Kind Kind
	Func func(ctx *ppc.CoreContext) error
}

// Table resolves a guest address to an installed hook, if any. The
// builder probes every instruction address via TryReplace.
type Table interface {
	// TryReplace reports whether address has a Replace-kind hook
	// installed, returning its index for the runtime to dispatch by
	// later (the hook-index becomes the HLEBridge record's Data
	// operand).
	TryReplace(address uint32) (hookIndex int, ok bool)

	// Dispatch runs the hook at hookIndex.
	Dispatch(hookIndex int, ctx *ppc.CoreContext) error
}

// Registry is the reference Table: registered hooks live in a slice
// indexed by hook index, with a map from guest address to that index.
// Registering a second hook at the same address repoints the address
// to the newer hook.
type Registry struct {
	byAddress map[uint32]int
	hooks     []Hook
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byAddress: make(map[uint32]int)}
}

// Register installs hook at address and returns its hook index.
func (r *Registry) Register(address uint32, hook Hook) int {
	idx := len(r.hooks)
	r.hooks = append(r.hooks, hook)
	r.byAddress[address] = idx
	return idx
}

// TryReplace implements Table.
func (r *Registry) TryReplace(address uint32) (int, bool) {
	idx, ok := r.byAddress[address]
	if !ok || r.hooks[idx].Kind != KindReplace {
		return 0, false
	}
	return idx, true
}

// Dispatch implements Table.
func (r *Registry) Dispatch(hookIndex int, ctx *ppc.CoreContext) error {
	if hookIndex < 0 || hookIndex >= len(r.hooks) {
		return nil
	}
	return r.hooks[hookIndex].Func(ctx)
}

// Package blockcache is the out-of-scope "block-cache index"
// collaborator: it maps a guest physical PC to the BlockDescriptor
// built for it, and handles invalidation when guest memory backing an
// already-built block is written to.
//
// The reference implementation is grounded on the teacher's DMA
// controller (gameboy-emulator's internal/dma), which tracks a
// transfer's source range and invalidates/rewrites destination memory
// by address range — the same "range in, affected entries out" shape
// this cache's Invalidate uses.
package blockcache

// BlockDescriptor is the built, executable unit the core looks up by
// address: the span of records in the arena implementing one basic
// block, plus the metadata needed to validate and re-chain it.
type BlockDescriptor struct {
	Address      uint32
	EndAddress   uint32
	ArenaStart   int
	ArenaEnd     int
	ChainEnabled bool
}

// Len reports how many records this descriptor spans.
func (b BlockDescriptor) Len() int { return b.ArenaEnd - b.ArenaStart }

// Index is the block-cache collaborator: lookup by start address,
// insertion of newly built descriptors, and invalidation either
// wholesale (a full purge, paired with Arena.Reset) or by the guest
// address range a write touched.
type Index interface {
	Lookup(address uint32) (BlockDescriptor, bool)
	Insert(desc BlockDescriptor)
	InvalidateRange(startAddress, endAddress uint32)
	Clear()
	Len() int
}

// InMemoryIndex is the reference Index: a map keyed by guest physical
// PC, with range invalidation done by linear scan — acceptable at the
// scale a single-threaded reference interpreter runs at, same
// trade-off the teacher's DMA controller makes by operating on a
// small, fully-resident memory array rather than a paged structure.
type InMemoryIndex struct {
	byAddress map[uint32]BlockDescriptor
}

// NewInMemoryIndex returns an empty Index.
func NewInMemoryIndex() *InMemoryIndex {
	return &InMemoryIndex{byAddress: make(map[uint32]BlockDescriptor)}
}

// Lookup implements Index.
func (idx *InMemoryIndex) Lookup(address uint32) (BlockDescriptor, bool) {
	d, ok := idx.byAddress[address]
	return d, ok
}

// Insert implements Index.
func (idx *InMemoryIndex) Insert(desc BlockDescriptor) {
	idx.byAddress[desc.Address] = desc
}

// InvalidateRange implements Index, dropping every descriptor whose
// span overlaps [startAddress, endAddress) — mirroring how the
// teacher's DMA transfer invalidates any cached tile data overlapping
// the bytes it just wrote.
func (idx *InMemoryIndex) InvalidateRange(startAddress, endAddress uint32) {
	for addr, d := range idx.byAddress {
		if d.EndAddress > startAddress && d.Address < endAddress {
			delete(idx.byAddress, addr)
		}
	}
}

// Clear implements Index, dropping every descriptor. The core pairs
// this with Arena.Reset so no descriptor ever outlives its records.
func (idx *InMemoryIndex) Clear() {
	idx.byAddress = make(map[uint32]BlockDescriptor)
}

// Len implements Index.
func (idx *InMemoryIndex) Len() int { return len(idx.byAddress) }

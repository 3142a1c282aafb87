package trie

// Allocator hands out branch nodes to a Trie.
//
// NewNode must return a zeroed node or an error; the trie treats any error
// as ErrOutOfMemory and leaves itself unchanged. FreeNode receives nodes the
// trie no longer references.
type Allocator interface {
	NewNode() (*Node, error)
	FreeNode(*Node)
}

// heap allocates nodes with new() and leaves freed ones to the GC.
type heap struct{}

func (heap) NewNode() (*Node, error) { return new(Node), nil }
func (heap) FreeNode(*Node)          {}

// --- NodePool ---

const defaultSlabSize = 256

// NodePool allocates nodes from fixed-size slabs and recycles freed nodes
// through a free-list. A positive Limit caps the number of nodes in use.
//
// A pool may back several tries but, like a Trie, is not safe for concurrent
// use.
type NodePool struct {
	Limit int

	slabs    [][]Node
	free     []*Node
	cur      int // slab being filled
	inUse    int
	slabSize int
}

// PoolStats is a snapshot of NodePool usage.
type PoolStats struct {
	Slabs int
	InUse int
	Free  int
}

// NewNodePool returns a pool with slabs of slabSize nodes (256 if not positive)
// and the given limit (0 means unlimited).
func NewNodePool(slabSize, limit int) *NodePool {
	if slabSize <= 0 {
		slabSize = defaultSlabSize
	}
	return &NodePool{
		Limit:    limit,
		free:     make([]*Node, 0, 21),
		slabSize: slabSize,
	}
}

// NewNode returns a node from the free-list or the current slab.
func (p *NodePool) NewNode() (*Node, error) {
	if p.Limit > 0 && p.inUse >= p.Limit {
		return nil, ErrOutOfMemory
	}
	var n *Node
	if l := len(p.free); l > 0 {
		n = p.free[l-1]
		p.free = p.free[:l-1]
	} else {
		if p.slabSize <= 0 {
			p.slabSize = defaultSlabSize
		}
		// slabs never grow past their capacity so node pointers stay valid
		for p.cur < len(p.slabs) && len(p.slabs[p.cur]) == cap(p.slabs[p.cur]) {
			p.cur++
		}
		if p.cur == len(p.slabs) {
			p.slabs = append(p.slabs, make([]Node, 0, p.slabSize))
		}
		slab := &p.slabs[p.cur]
		*slab = append(*slab, Node{})
		n = &(*slab)[len(*slab)-1]
	}
	p.inUse++
	return n, nil
}

// FreeNode clears a node and stores it in the free-list for re-use.
func (p *NodePool) FreeNode(n *Node) {
	*n = Node{}
	p.free = append(p.free, n)
	p.inUse--
}

// Stats reports the current pool usage.
func (p *NodePool) Stats() PoolStats {
	return PoolStats{
		Slabs: len(p.slabs),
		InUse: p.inUse,
		Free:  len(p.free),
	}
}

// Reset forgets about handed out nodes and free-list entries (not freeing the
// slabs). Every trie using the pool must be discarded or re-initialized.
func (p *NodePool) Reset() {
	for i, slab := range p.slabs {
		for j := range slab {
			slab[j] = Node{}
		}
		p.slabs[i] = slab[:0]
	}
	p.free = p.free[:0]
	p.cur = 0
	p.inUse = 0
}

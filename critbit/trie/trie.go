package trie

import "fmt"

// Entry is a trie leaf. Key aliases caller-owned storage.
type Entry struct {
	Key []byte
	Val any
}

// ref holds either an Entry or a Node pointer; both nil means empty.
type ref struct {
	node *Node
	leaf *Entry
}

func (r ref) isNode() bool {
	return r.node != nil
}

func (r ref) isEmpty() bool {
	return r.node == nil && r.leaf == nil
}

func (r ref) String() string {
	switch {
	case r.node != nil:
		return fmt.Sprintf("<ref NODE off=%v, otherbits=%08b>", r.node.off, r.node.otherbits)
	case r.leaf != nil:
		return fmt.Sprintf("<ref LEAF key=%q, val=%v>", r.leaf.Key, r.leaf.Val)
	}
	return "<ref EMPTY>"
}

// visitMark records traversal progress of a Node.
type visitMark uint8

const (
	markNone  visitMark = iota
	markLeft            // child[0] holds the parent back-link
	markRight           // child[1] holds the parent back-link
)

// Node is a branch of the trie.
type Node struct {
	child [2]ref
	// off is the offset of the differing byte
	off int
	// otherbits has all bits set except the crit bit
	otherbits byte
	mark      visitMark
}

// dir calculates the direction for the given key.
//
// (otherbits | c) is either 0xFF (crit bit of c is 1) or 0xFF with the crit
// bit missing (crit bit of c is 0). Adding 1 carries into bit 8 only in the
// first case.
func (n *Node) dir(key []byte) int {
	var c byte
	if n.off < len(key) {
		c = key[n.off]
	}
	return direction(n.otherbits, c)
}

func direction(otherbits, c byte) int {
	return int((1 + uint16(otherbits|c)) >> 8)
}

// Trie is a crit-bit trie. The zero value is an empty trie allocating its
// nodes on the Go heap.
type Trie struct {
	root  ref
	size  int
	alloc Allocator
	busy  bool
}

// Init resets t to an empty trie using the given allocator (nil means heap).
// It must not be called on a non-empty trie backed by a NodePool, or the
// pool leaks its nodes.
func Init(t *Trie, alloc Allocator) *Trie {
	*t = Trie{alloc: alloc}
	return t
}

// New returns an empty trie using the given allocator (nil means heap).
func New(alloc Allocator) *Trie {
	return Init(&Trie{}, alloc)
}

// Len returns the number of entries.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) Empty() bool {
	return t.root.isEmpty()
}

func (t *Trie) allocator() Allocator {
	if t.alloc == nil {
		return heap{}
	}
	return t.alloc
}

// enter panics when t is already inside a traversal callback.
func (t *Trie) enter(op string) {
	if t.busy {
		panic("trie: " + op + " called during traversal")
	}
}

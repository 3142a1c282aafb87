package trie

import (
	"bytes"
	"fmt"

	"github.com/hideo55/go-popcount"
)

type checkStep struct {
	node *Node
	dir  int
}

// after reports whether node b is positioned after node a: a later byte or,
// within the same byte, a less significant crit bit.
func after(a, b *Node) bool {
	return b.off > a.off || b.off == a.off && b.otherbits > a.otherbits
}

// Check walks the whole trie and verifies its structural invariants. It is
// meant for tests and diagnostics and costs O(sum of leaf depths).
func (t *Trie) Check() error {
	t.enter("Check")

	if t.Empty() {
		if t.size != 0 {
			return fmt.Errorf("%w: empty trie with size %d", ErrCorrupted, t.size)
		}
		return nil
	}

	var (
		path  = make([]checkStep, 0, 21)
		cur   = t.root
		prev  []byte
		count int
	)
	for {
		// descend to the leftmost leaf
		for cur.node != nil {
			n := cur.node
			if n.mark != markNone {
				return fmt.Errorf("%w: node %v left marked", ErrCorrupted, cur)
			}
			if crit := popcount.Count(uint64(^n.otherbits)); crit != 1 {
				return fmt.Errorf("%w: node %v has %d crit bits", ErrCorrupted, cur, crit)
			}
			if n.child[0].isEmpty() || n.child[1].isEmpty() {
				return fmt.Errorf("%w: node %v has an empty child", ErrCorrupted, cur)
			}
			if l := len(path); l > 0 && !after(path[l-1].node, n) {
				return fmt.Errorf("%w: node %v is not after its parent %v",
					ErrCorrupted, cur, ref{node: path[l-1].node})
			}
			path = append(path, checkStep{n, 0})
			cur = n.child[0]
		}
		// check the leaf
		e := cur.leaf
		if !validKey(e.Key) {
			return fmt.Errorf("%w: invalid key %q", ErrCorrupted, e.Key)
		}
		for _, s := range path {
			if s.node.dir(e.Key) != s.dir {
				return fmt.Errorf("%w: key %q on the wrong side of %v",
					ErrCorrupted, e.Key, ref{node: s.node})
			}
		}
		if count > 0 && bytes.Compare(prev, e.Key) >= 0 {
			return fmt.Errorf("%w: key %q is out of order after %q", ErrCorrupted, e.Key, prev)
		}
		prev = e.Key
		count++

		// climb up to the nearest unvisited right child
		for l := len(path); l > 0 && path[l-1].dir == 1; l = len(path) {
			path = path[:l-1]
		}
		l := len(path)
		if l == 0 {
			break
		}
		path[l-1].dir = 1
		cur = path[l-1].node.child[1]
	}
	if count != t.size {
		return fmt.Errorf("%w: found %d entries, size is %d", ErrCorrupted, count, t.size)
	}
	return nil
}

package trie

import "bytes"

type traverseFlags uint8

const (
	// release every node once both children are done
	traverseFree traverseFlags = 1 << iota
)

// traverse walks the subtree at top in key order and calls visit on every
// entry.
//
// There are no parent pointers, and recursion or an explicit stack would grow
// with the tree depth, which is bounded only by the key length. Instead a node
// we descend from keeps the parent back-link in the child slot being walked
// and its mark tells which one. On the way up the slot gets restored from
// prev, the reference we just came back from.
func (t *Trie) traverse(top ref, visit func(*Entry), flags traverseFlags) {
	var parent ref // back-link while descending, prev child while ascending
	iter := top

	for !iter.isEmpty() {
		if iter.leaf != nil {
			if visit != nil {
				visit(iter.leaf)
			}
			// continue with the parent which restores its slot from iter
			iter, parent = parent, iter
			continue
		}

		n := iter.node
		switch n.mark {
		case markRight:
			// both children done - climb up
			iter = n.child[1]
			if flags&traverseFree != 0 {
				t.allocator().FreeNode(n)
			} else {
				n.child[1] = parent
				n.mark = markNone
			}
		case markLeft:
			// left child done - restore it and walk the right one
			iter = n.child[1]
			n.child[1] = n.child[0]
			n.child[0] = parent
			n.mark = markRight
		default:
			// unvisited - walk the left child
			iter = n.child[0]
			n.child[0] = parent
			n.mark = markLeft
		}
		parent = ref{node: n}
	}
}

// subtree returns the root of the smallest subtree holding every key with the
// given prefix. It returns false if no such key exists.
//
// A prefix ending in zero bytes also matches its own stem under the zero
// padding: the stem is the prefix without its trailing zeros and, if stored,
// it is the leftmost leaf of the subtree. It is returned as skip when the
// subtree still holds it, and must not be reported.
func (t *Trie) subtree(prefix []byte) (top ref, skip *Entry, ok bool) {
	// test for empty tree
	if t.Empty() {
		return ref{}, nil, false
	}
	// shortcut for empty prefix
	if len(prefix) == 0 {
		return t.root, nil, true
	}
	// walk for best member
	p := t.root
	top = t.root
	for p.node != nil {
		newtop := p.node.off < len(prefix)
		// try next node
		p = p.node.child[p.node.dir(prefix)]
		if newtop {
			top = p
		}
	}
	// the best member may still be unrelated
	key := p.leaf.Key
	if bytes.HasPrefix(key, prefix) {
		return top, nil, true
	}
	if len(key) >= len(prefix) || !bytes.Equal(key, prefix[:len(key)]) ||
		len(bytes.TrimRight(prefix[len(key):], "\x00")) != 0 {
		return ref{}, nil, false
	}
	// the best member is the stem, every other key of top has the prefix
	for top.node != nil && top.node.child[0].leaf == p.leaf {
		top = top.node.child[1]
	}
	if top.leaf == p.leaf {
		return ref{}, nil, false
	}
	if top.leaf == nil {
		skip = p.leaf
	}
	return top, skip, true
}

// Clear empties the trie, calling free (if not nil) on every entry in key
// order. Nodes are returned to the allocator; keys and values are left to the
// caller. The trie can be reused right away.
func (t *Trie) Clear(free func(*Entry)) {
	t.enter("Clear")

	t.busy = true
	defer func() { t.busy = false }()

	t.traverse(t.root, free, traverseFree)
	t.root = ref{}
	t.size = 0
}

// Visit calls visit on every entry whose key starts with the prefix, in key
// order. An empty prefix visits the whole trie.
func (t *Trie) Visit(prefix []byte, visit func(*Entry)) {
	t.enter("Visit")

	top, skip, ok := t.subtree(prefix)
	if !ok {
		return
	}
	if skip != nil && visit != nil {
		orig := visit
		visit = func(e *Entry) {
			if e != skip {
				orig(e)
			}
		}
	}

	t.busy = true
	defer func() { t.busy = false }()

	t.traverse(top, visit, 0)
}

// Iter calls a handler for all entries with a given prefix, in key order.
// It returns whether all prefixed entries were iterated.
// The handler can continue the process by returning true or abort with false.
//
// Unlike Visit, Iter leaves the tree untouched and keeps the pending right
// children on a heap-allocated stack.
func (t *Trie) Iter(prefix []byte, handler func(*Entry) bool) bool {
	t.enter("Iter")

	top, skip, ok := t.subtree(prefix)
	if !ok {
		return true
	}

	t.busy = true
	defer func() { t.busy = false }()

	// walk the tree without function recursion
	toVisit := make([]ref, 1, 21)
	toVisit[0] = top

	for l := len(toVisit); l > 0; l = len(toVisit) {
		// pop the last ref
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		// descend to the leftmost leaf pushing the right children
		for p.node != nil {
			toVisit = append(toVisit, p.node.child[1])
			p = p.node.child[0]
		}
		if p.leaf != skip && !handler(p.leaf) {
			return false
		}
	}
	return true
}

// Keys returns all keys with a given prefix in a sorted order.
func (t *Trie) Keys(prefix []byte) [][]byte {
	keys := make([][]byte, 0)
	t.Iter(prefix, func(e *Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Entries returns all entries with a given prefix in a sorted order.
func (t *Trie) Entries(prefix []byte) []*Entry {
	entries := make([]*Entry, 0)
	t.Iter(prefix, func(e *Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

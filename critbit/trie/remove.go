package trie

import "bytes"

// Remove unlinks the key from the tree and returns its entry (if any).
func (t *Trie) Remove(key []byte) (*Entry, bool) {
	t.enter("Remove")

	// test for empty tree
	if t.Empty() {
		return nil, false
	}
	// walk for best member, remembering the slot of the parent node
	var dir int
	var wp *ref
	p := &t.root
	for p.node != nil {
		wp = p
		// try next node
		dir = p.node.dir(key)
		p = &p.node.child[dir]
	}
	// check for membership
	e := p.leaf
	if !bytes.Equal(e.Key, key) {
		return nil, false
	}
	// delete from the tree
	t.size--
	if wp == nil {
		t.root = ref{}
		return e, true
	}
	n := wp.node
	*wp = n.child[1-dir]
	t.allocator().FreeNode(n)

	return e, true
}

package trie

import "bytes"

// closest descends to the leaf that best matches the key.
// The trie must not be empty.
func (t *Trie) closest(key []byte) *Entry {
	p := t.root
	for p.node != nil {
		// try next node
		p = p.node.child[p.node.dir(key)]
	}
	return p.leaf
}

// LookupEntry returns the entry stored under the key.
func (t *Trie) LookupEntry(key []byte) (*Entry, bool) {
	t.enter("LookupEntry")

	// test for empty tree
	if t.Empty() {
		return nil, false
	}
	// the descent only finds the best candidate
	e := t.closest(key)
	if !bytes.Equal(e.Key, key) {
		return nil, false
	}
	return e, true
}

// Lookup returns a value associated with the key.
func (t *Trie) Lookup(key []byte) (val any, ok bool) {
	var e *Entry
	if e, ok = t.LookupEntry(key); ok {
		val = e.Val
	}
	return
}

// Has reports whether the key is stored.
func (t *Trie) Has(key []byte) bool {
	_, ok := t.LookupEntry(key)
	return ok
}

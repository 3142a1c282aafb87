package trie

import (
	"errors"
	"fmt"
)

func validKey(key []byte) bool {
	return len(key) == 0 || key[len(key)-1] != 0
}

// diff returns the offset of the first differing byte of a and b (both
// zero-padded) together with the two bytes, or -1 if the keys are equal.
func diff(a, b []byte) (off int, ach, bch byte) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for off = 0; off < n; off++ {
		if ach = 0; off < len(a) {
			ach = a[off]
		}
		if bch = 0; off < len(b) {
			bch = b[off]
		}
		if ach != bch {
			return
		}
	}
	return -1, 0, 0
}

// link splices e into the trie. If the key is already present it returns the
// slot holding the existing leaf and ErrAlreadyExists. Nothing changes on
// error.
func (t *Trie) link(e *Entry) (*ref, error) {
	key := e.Key

	// test for empty tree
	if t.Empty() {
		t.root = ref{leaf: e}
		t.size++
		return nil, nil
	}
	// walk for best member
	p := &t.root
	for p.node != nil {
		// try next node
		p = &p.node.child[p.node.dir(key)]
	}
	// find critical bit
	off, ch, keych := diff(p.leaf.Key, key)
	if off < 0 {
		return p, ErrAlreadyExists
	}
	// keep only the most significant differing bit and invert
	bit := ch ^ keych
	bit |= bit >> 1
	bit |= bit >> 2
	bit |= bit >> 4
	otherbits := (bit &^ (bit >> 1)) ^ 0xFF

	// the existing subtree hangs off here, the new leaf goes the other way
	odir := direction(otherbits, ch)

	nn, err := t.allocator().NewNode()
	if err != nil || nn == nil {
		if err == nil || errors.Is(err, ErrOutOfMemory) {
			return nil, ErrOutOfMemory
		}
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	*nn = Node{off: off, otherbits: otherbits}
	nn.child[1-odir] = ref{leaf: e}

	// walk for best insertion node: the first node positioned after the
	// new crit bit (by byte, then by bit from MSB to LSB)
	wp := &t.root
	for wp.node != nil {
		n := wp.node
		if n.off > off || n.off == off && n.otherbits > otherbits {
			break
		}
		// node shares the prefix - go one node down
		wp = &n.child[n.dir(key)]
	}
	nn.child[odir] = *wp
	*wp = ref{node: nn}
	t.size++

	return nil, nil
}

// Insert stores val under key. The key slice is referenced, not copied.
//
// If the key is present and overwrite is false, the existing entry is returned
// together with ErrAlreadyExists. With overwrite the existing entry's value is
// replaced in place. Otherwise the new entry is returned.
func (t *Trie) Insert(key []byte, val any, overwrite bool) (*Entry, error) {
	t.enter("Insert")

	if !validKey(key) {
		return nil, ErrInvalidKey
	}
	e := &Entry{Key: key, Val: val}

	slot, err := t.link(e)
	switch {
	case errors.Is(err, ErrAlreadyExists):
		if overwrite {
			slot.leaf.Val = val
			return slot.leaf, nil
		}
		return slot.leaf, err
	case err != nil:
		return nil, err
	}
	return e, nil
}

// InsertEntry links a caller-owned entry into the trie without copying it.
//
// It returns the entry previously stored under the same key, if any. Without
// overwrite such a duplicate is reported with ErrAlreadyExists and e is not
// linked; with overwrite e takes the duplicate's place.
func (t *Trie) InsertEntry(e *Entry, overwrite bool) (prev *Entry, err error) {
	t.enter("InsertEntry")

	if !validKey(e.Key) {
		return nil, ErrInvalidKey
	}
	slot, err := t.link(e)
	if errors.Is(err, ErrAlreadyExists) {
		prev = slot.leaf
		if overwrite {
			slot.leaf = e
			err = nil
		}
	}
	return prev, err
}

// Set associates a value with a key. Returns the previous value (if any).
func (t *Trie) Set(key []byte, val any) (prev any, err error) {
	e, err := t.Insert(key, val, false)
	if errors.Is(err, ErrAlreadyExists) {
		prev, e.Val = e.Val, val
		return prev, nil
	}
	return nil, err
}

// Replace applies a func to the current value of a key (found=false for a
// missing key) and stores the result. Returns the stored value.
//
// For a missing key replace is called before the node allocation, so it may
// run even if the insertion then fails.
func (t *Trie) Replace(key []byte, replace func(prev any, found bool) any) (any, error) {
	if e, ok := t.LookupEntry(key); ok {
		e.Val = replace(e.Val, true)
		return e.Val, nil
	}
	if !validKey(key) {
		return nil, ErrInvalidKey
	}
	val := replace(nil, false)
	if _, err := t.Insert(key, val, false); err != nil {
		return nil, err
	}
	return val, nil
}

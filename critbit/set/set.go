// Package set is an ordered set of byte-string keys on top of a crit-bit trie.
package set

import (
	"errors"

	"github.com/aglyzov/go-critbit/critbit/trie"
)

type Set struct {
	tr trie.Trie
}

// InitSet resets set to an empty one allocating nodes from alloc (nil means
// the Go heap).
func InitSet(set *Set, alloc trie.Allocator) *Set {
	trie.Init(&set.tr, alloc)
	return set
}

func NewSet(alloc trie.Allocator) *Set {
	return InitSet(&Set{}, alloc)
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return s.tr.Len()
}

func (s *Set) Empty() bool {
	return s.tr.Empty()
}

// Has reports whether the key is in the set.
func (s *Set) Has(key []byte) bool {
	return s.tr.Has(key)
}

// Add puts a key into the set. Returns false if the key was already there.
func (s *Set) Add(key []byte) (bool, error) {
	_, err := s.tr.Insert(key, nil, false)
	switch {
	case errors.Is(err, trie.ErrAlreadyExists):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// Del removes the key from the set. Returns false for an unknown key.
func (s *Set) Del(key []byte) bool {
	_, ok := s.tr.Remove(key)
	return ok
}

// Merge adds the keys of another Set having the given prefix into this one.
func (s *Set) Merge(other *Set, prefix []byte) error {
	if other == nil || other == s {
		return nil
	}
	var err error
	other.Iter(prefix, func(key []byte) bool {
		_, err = s.Add(key)
		return err == nil
	})
	return err
}

// Iter calls a handler for all keys with a given prefix.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (s *Set) Iter(prefix []byte, handler func([]byte) bool) bool {
	return s.tr.Iter(prefix, func(e *trie.Entry) bool {
		return handler(e.Key)
	})
}

// Keys returns all keys, as a slice of []byte, in a sorted order.
func (s *Set) Keys() [][]byte {
	return s.tr.Keys(nil)
}

// Clear removes all keys giving the nodes back to the allocator.
func (s *Set) Clear() {
	s.tr.Clear(nil)
}

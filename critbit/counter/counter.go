// Package counter counts byte-string keys in a crit-bit trie.
package counter

import (
	"bytes"
	"sort"

	"github.com/aglyzov/go-critbit/critbit/trie"
)

type CountedKey struct {
	Key   []byte
	Count int
}
type CountedKeySlice []CountedKey

type Counter struct {
	tr trie.Trie
}

// InitCounter resets counter to an empty one allocating nodes from alloc
// (nil means the Go heap).
func InitCounter(counter *Counter, alloc trie.Allocator) *Counter {
	trie.Init(&counter.tr, alloc)
	return counter
}

func NewCounter(alloc trie.Allocator) *Counter {
	return InitCounter(&Counter{}, alloc)
}

// Len returns the number of keys in the tree.
func (c *Counter) Len() int {
	return c.tr.Len()
}

func (c *Counter) Empty() bool {
	return c.tr.Empty()
}

// Get returns a count associated with the key
func (c *Counter) Get(key []byte) int {
	if val, ok := c.tr.Lookup(key); ok {
		return val.(int)
	}
	return 0
}

// Replace applies a func to a previous count of a key (0 for a missing one)
// and stores the result. Returns the previous count.
func (c *Counter) Replace(key []byte, replace func(int) int) (prev int, err error) {
	_, err = c.tr.Replace(key, func(val any, found bool) any {
		if found {
			prev = val.(int)
		}
		return replace(prev)
	})
	if err != nil {
		return 0, err
	}
	return prev, nil
}

// Set associates a given count with a key. Returns previous count.
func (c *Counter) Set(key []byte, count int) (int, error) {
	return c.Replace(key, func(int) int { return count })
}

// IncBy incremets a count associated with the key by a given delta and returns it.
func (c *Counter) IncBy(key []byte, delta int) (int, error) {
	prev, err := c.Replace(key, func(prev int) int { return prev + delta })
	if err != nil {
		return 0, err
	}
	return prev + delta, nil
}

// Inc incremets a count associated with the key by 1 and returns it.
func (c *Counter) Inc(key []byte) (int, error) {
	return c.IncBy(key, 1)
}

// Dec decremets a count associated with the key by 1 and returns it.
func (c *Counter) Dec(key []byte) (int, error) {
	return c.IncBy(key, -1)
}

// Del removes the key from the tree and returns its counter
func (c *Counter) Del(key []byte) int {
	if e, ok := c.tr.Remove(key); ok {
		return e.Val.(int)
	}
	return 0
}

// Merge merges the prefixed keys of another Counter into this one. Counters
// of common keys are added up.
func (c *Counter) Merge(other *Counter, prefix []byte) error {
	if other == nil {
		return nil
	}
	if other == c {
		// doubling in place needs no allocation
		c.tr.Visit(prefix, func(e *trie.Entry) {
			e.Val = e.Val.(int) * 2
		})
		return nil
	}
	var err error
	other.Iter(prefix, func(ckey CountedKey) bool {
		_, err = c.IncBy(ckey.Key, ckey.Count)
		return err == nil
	})
	return err
}

// Iter calls a handler for all keys with a given prefix.
// It returns whether all prefixed keys were iterated.
// The handler can continue the process by returning true or abort with false.
func (c *Counter) Iter(prefix []byte, handler func(CountedKey) bool) bool {
	return c.tr.Iter(prefix, func(e *trie.Entry) bool {
		return handler(CountedKey{e.Key, e.Val.(int)})
	})
}

// Keys returns all keys, as a slice of []byte, in a sorted order.
func (c *Counter) Keys() [][]byte {
	return c.tr.Keys(nil)
}

// CountedKeys returns a []CountedKey slice sorted by count (descending)
func (c *Counter) CountedKeys() CountedKeySlice {
	pairs := make(CountedKeySlice, 0, c.Len())

	c.Iter(nil, func(ckey CountedKey) bool {
		pairs = append(pairs, ckey)
		return true
	})
	sort.Stable(pairs)

	return pairs
}

// Clear removes all keys giving the nodes back to the allocator.
func (c *Counter) Clear() {
	c.tr.Clear(nil)
}

// -- CountedKeySlice sort interface --

func (v CountedKeySlice) Len() int      { return len(v) }
func (v CountedKeySlice) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v CountedKeySlice) Less(i, j int) bool {
	if v[i].Count == v[j].Count {
		return bytes.Compare(v[i].Key, v[j].Key) < 0
	}
	return v[i].Count > v[j].Count // inverted logic
}

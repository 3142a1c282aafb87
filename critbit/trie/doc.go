// Package trie implements a crit-bit trie mapping byte-string keys to opaque
// values.
//
// A trie consists of branch Nodes and leaf Entries. A branch stores no key
// material, only the position of the first bit at which its two subtrees
// differ:
//
//   - off       - offset of the differing byte;
//   - otherbits - 8-bit mask with every bit set except the critical one.
//
// A leaf is an *Entry that references the caller's key slice and value. Keys
// are never copied, so the caller must not modify a key while its entry is
// stored.
//
// Every key is treated as if followed by an infinite run of zero bytes. This
// puts shorter keys to the left of their extensions and makes the in-order
// walk produce keys in lexicographic order:
//
//	          [off:0 otherbits:11111101]
//	           /                      \
//	    [off:1 10111111]            "c"
//	     /          \
//	   "a"         "ab"
//
// Lookup, Insert and Remove take time proportional to the key length. Clear
// and Visit walk a subtree without recursion and without an auxiliary stack:
// while descending, a branch keeps the back-link to its parent in the child
// slot it is currently walking and restores the slot on the way up.
//
// A Trie is not safe for concurrent use. Calling a trie method from inside a
// Clear, Visit or Iter callback panics.
package trie

package trie

import "errors"

var (
	// ErrOutOfMemory is returned by Insert when the allocator refuses a node.
	ErrOutOfMemory = errors.New("trie: out of nodes")
	// ErrAlreadyExists is returned by Insert without overwrite on a duplicate key.
	ErrAlreadyExists = errors.New("trie: key already exists")
	// ErrInvalidKey is returned for keys ending with a zero byte. Such a key
	// has no crit bit against the same key without the trailing zeros.
	ErrInvalidKey = errors.New("trie: key ends with a zero byte")
	// ErrCorrupted is wrapped by Check failures.
	ErrCorrupted = errors.New("trie: corrupted")
)

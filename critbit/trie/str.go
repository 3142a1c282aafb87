package trie

// String flavoured wrappers. The conversions copy the string once; the copy
// is owned by the trie entry from then on.

// LookupString is Lookup for a string key.
func (t *Trie) LookupString(key string) (any, bool) {
	return t.Lookup([]byte(key))
}

// HasString is Has for a string key.
func (t *Trie) HasString(key string) bool {
	return t.Has([]byte(key))
}

// InsertString is Insert for a string key.
func (t *Trie) InsertString(key string, val any, overwrite bool) (*Entry, error) {
	return t.Insert([]byte(key), val, overwrite)
}

// RemoveString is Remove for a string key.
func (t *Trie) RemoveString(key string) (*Entry, bool) {
	return t.Remove([]byte(key))
}

// VisitString is Visit for a string prefix.
func (t *Trie) VisitString(prefix string, visit func(*Entry)) {
	t.Visit([]byte(prefix), visit)
}

// SetString is Set for a string key.
func (t *Trie) SetString(key string, val any) (any, error) {
	return t.Set([]byte(key), val)
}

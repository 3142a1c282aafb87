package trie_test

import (
	"fmt"

	"github.com/aglyzov/go-critbit/critbit/trie"
)

func Example() {
	tr := trie.New(nil)

	for i, s := range []string{"/some/path", "/some/sub/path", "/some/path/extended", "/another/path"} {
		if _, err := tr.InsertString(s, i, false); err != nil {
			panic(err)
		}
	}

	tr.VisitString("/some/", func(e *trie.Entry) {
		fmt.Printf("%s=%v\n", e.Key, e.Val)
	})

	if val, ok := tr.LookupString("/another/path"); ok {
		fmt.Println("found", val)
	}

	tr.Clear(nil)
	fmt.Println("empty:", tr.Empty())

	// Output:
	// /some/path=0
	// /some/path/extended=2
	// /some/sub/path=1
	// found 3
	// empty: true
}

func ExampleNodePool() {
	pool := trie.NewNodePool(0, 1)
	tr := trie.New(pool)

	for _, s := range []string{"a", "b", "c"} {
		_, err := tr.InsertString(s, nil, false)
		fmt.Println(s, err)
	}
	fmt.Printf("%+v\n", pool.Stats())

	// Output:
	// a <nil>
	// b <nil>
	// c trie: out of nodes
	// {Slabs:1 InUse:1 Free:0}
}

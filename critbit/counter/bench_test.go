package counter

import (
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aglyzov/go-critbit/critbit/trie"
)

var words, tests [][]byte

func initdata(b *testing.B) {
	if words != nil {
		return
	}
	const seed = 1234567890

	faker := gofakeit.New(seed)

	// a small vocabulary so that most words repeat
	vocab := make([]string, 500)
	for i := range vocab {
		vocab[i] = faker.Word()
	}
	words = make([][]byte, 20000)
	for i := range words {
		words[i] = []byte(vocab[faker.Number(0, len(vocab)-1)])
	}
	tests = make([][]byte, 5000)
	for i := range tests {
		tests[i] = []byte(faker.Word())
	}
	b.Logf("data size:  words %v, tests %v", len(words), len(tests))
}

func BenchmarkMap(b *testing.B) {
	initdata(b)
	var count int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[string]int)
		for _, w := range words {
			m[string(w)]++
		}
		count = 0
		for _, w := range tests {
			if m[string(w)] == 1 {
				count++
			}
		}
	}
	_ = count
}

func BenchmarkTree(b *testing.B) {
	initdata(b)
	var count int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewCounter(nil)
		for _, w := range words {
			_, _ = c.Inc(w)
		}
		count = 0
		for _, w := range tests {
			if c.Get(w) == 1 {
				count++
			}
		}
	}
	_ = count
}

func BenchmarkTreePool(b *testing.B) {
	initdata(b)
	pool := trie.NewNodePool(1024, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewCounter(pool)
		for _, w := range words {
			_, _ = c.Inc(w)
		}
		c.Clear()
	}
}

func BenchmarkMapSort(b *testing.B) {
	initdata(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := make(map[string]int)
		for _, w := range words {
			m[string(w)]++
		}
		s := make([]string, 0, len(m))
		for w := range m {
			s = append(s, w)
		}
		sort.Strings(s)
	}
}

func BenchmarkTreeSort(b *testing.B) {
	initdata(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewCounter(nil)
		for _, w := range words {
			_, _ = c.Inc(w)
		}
		c.Iter(nil, func(CountedKey) bool {
			return true
		})
	}
}

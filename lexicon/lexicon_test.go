package lexicon_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/doublets/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Normalization verifies trimming, lowercasing, empty skipping and de-duplication.
func TestNew_Normalization(t *testing.T) {
	lex := lexicon.New("Cat", "cat", " COT ", "", "   ", "dog", "DOG")

	assert.Equal(t, 3, lex.Size())
	assert.Equal(t, []string{"cat", "cot", "dog"}, lex.Words())
}

// TestContains_CaseInsensitive ensures callers get the same answer regardless of casing.
func TestContains_CaseInsensitive(t *testing.T) {
	lex := lexicon.New("cat", "dog")

	for _, w := range []string{"cat", "CAT", "Cat", " cat "} {
		assert.Truef(t, lex.Contains(w), "Contains(%q)", w)
	}
	assert.False(t, lex.Contains("cats"))
	assert.False(t, lex.Contains(""))
}

// TestEmptyAndNil covers the empty lexicon and a nil receiver.
func TestEmptyAndNil(t *testing.T) {
	empty := lexicon.New()
	assert.Equal(t, 0, empty.Size())
	assert.False(t, empty.Contains("cat"))
	assert.Empty(t, empty.Words())

	var nilLex *lexicon.Lexicon
	assert.Equal(t, 0, nilLex.Size())
	assert.False(t, nilLex.Contains("cat"))
	assert.Nil(t, nilLex.Words())
	assert.Nil(t, nilLex.WordsOfLength(3))

	var zero lexicon.Lexicon
	assert.False(t, zero.Contains("cat"))
}

// TestWordsOfLength filters by rune count, not byte count.
func TestWordsOfLength(t *testing.T) {
	lex := lexicon.New("cat", "cart", "dog", "été", "a")

	assert.Equal(t, []string{"cat", "dog", "été"}, lex.WordsOfLength(3))
	assert.Equal(t, []string{"cart"}, lex.WordsOfLength(4))
	assert.Equal(t, []string{"a"}, lex.WordsOfLength(1))
	assert.Empty(t, lex.WordsOfLength(0))
	assert.Empty(t, lex.WordsOfLength(9))
}

// TestWords_ReturnsCopy ensures callers cannot mutate the lexicon through Words.
func TestWords_ReturnsCopy(t *testing.T) {
	lex := lexicon.New("cat", "dog")
	words := lex.Words()
	require.Len(t, words, 2)
	words[0] = "zzz"

	assert.True(t, lex.Contains("cat"))
	assert.False(t, lex.Contains("zzz"))
	assert.Equal(t, []string{"cat", "dog"}, lex.Words())
}

// TestNormalize documents the canonical form.
func TestNormalize(t *testing.T) {
	assert.Equal(t, "cat", lexicon.Normalize("  CaT\t"))
	assert.Equal(t, "", lexicon.Normalize(" "))
}

// TestConcurrentReaders ensures shared read-only access is race-free.
func TestConcurrentReaders(t *testing.T) {
	lex := lexicon.New("cat", "cot", "dog")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = lex.Contains("cat")
				_ = lex.WordsOfLength(3)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, lex.Size())
}

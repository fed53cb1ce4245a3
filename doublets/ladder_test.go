package doublets_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/doublets/doublets"
	"github.com/katalvlaran/doublets/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinLadder_Scenario covers the cat/dog lexicon.
func TestMinLadder_Scenario(t *testing.T) {
	s := newSampleSolver(t)

	ladder := s.MinLadder("cat", "dog")
	assert.Len(t, ladder, 4)
	assert.True(t, s.IsWordLadder(ladder), "%v", ladder)
	assert.Equal(t, "cat", ladder[0])
	assert.Equal(t, "dog", ladder[len(ladder)-1])

	assert.Equal(t, []string{"cat", "bat"}, s.MinLadder("cat", "bat"))
	assert.Empty(t, s.MinLadder("cat", "xyz"))
}

// TestMinLadder_Deterministic ensures identical inputs give identical ladders.
func TestMinLadder_Deterministic(t *testing.T) {
	s := newSampleSolver(t)
	first := s.MinLadder("cat", "dog")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.MinLadder("cat", "dog"))
	}
	// position-then-alphabet order discovers dot before cog is expanded
	assert.Equal(t, []string{"cat", "cot", "dot", "dog"}, first)
}

// TestMinLadder_EdgePolicy covers missing endpoints, length mismatch, equality and casing.
func TestMinLadder_EdgePolicy(t *testing.T) {
	s := doublets.MustNewSolver(lexicon.New(append([]string{"cart", "ink", "inn"}, sampleWords...)...))

	assert.Empty(t, s.MinLadder("xyz", "cat"), "start absent")
	assert.Empty(t, s.MinLadder("cat", "xyz"), "end absent")
	assert.Empty(t, s.MinLadder("cat", "cart"), "length mismatch")
	assert.Empty(t, s.MinLadder("cat", "ink"), "different component")
	assert.Equal(t, []string{"cat"}, s.MinLadder("cat", "cat"))
	assert.Equal(t, []string{"cat"}, s.MinLadder("CAT", " cat"))
	assert.Equal(t, []string{"ink", "inn"}, s.MinLadder("INK", "Inn"))

	empty := doublets.MustNewSolver(lexicon.New())
	assert.Empty(t, empty.MinLadder("cat", "cat"))
	assert.Empty(t, empty.MinLadder("cat", "dog"))
}

// TestMinLadder_ReturnsFreshSlice ensures callers own the result.
func TestMinLadder_ReturnsFreshSlice(t *testing.T) {
	s := newSampleSolver(t)
	a := s.MinLadder("cat", "dog")
	a[1] = "zzz"
	b := s.MinLadder("cat", "dog")
	assert.NotEqual(t, "zzz", b[1])
}

// TestMinLadderContext_Cancelled returns the context error for a real search.
func TestMinLadderContext_Cancelled(t *testing.T) {
	s := newSampleSolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ladder, err := s.MinLadderContext(ctx, "cat", "dog")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ladder)

	_, err = s.LadderContext(ctx, "cat", "dog")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestLadder_DepthFirst finds a valid, not necessarily minimal, ladder.
func TestLadder_DepthFirst(t *testing.T) {
	s := newSampleSolver(t)

	ladder := s.Ladder("cat", "dog")
	assert.True(t, s.IsWordLadder(ladder), "%v", ladder)
	assert.GreaterOrEqual(t, len(ladder), 4)
	assert.Equal(t, []string{"cat", "bat", "bot", "cot", "dot", "dog"}, ladder)

	assert.Equal(t, []string{"cat"}, s.Ladder("Cat", "cat"))
	assert.Empty(t, s.Ladder("cat", "xyz"))
}

// abcWords returns a fixed subset of the 27 three-letter words over {a,b,c}.
func abcWords() []string {
	const letters = "abc"
	var words []string
	idx := 0
	for _, x := range letters {
		for _, y := range letters {
			for _, z := range letters {
				if (idx*7)%5 != 0 {
					words = append(words, string([]rune{x, y, z}))
				}
				idx++
			}
		}
	}

	return words
}

// allPairsDistances computes ladder distances by Floyd–Warshall over an
// explicit adjacency built from HammingDistance, independent of Neighbors.
func allPairsDistances(t *testing.T, s *doublets.Solver, words []string) [][]int {
	t.Helper()
	n := len(words)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			switch d, err := s.HammingDistance(words[i], words[j]); {
			case err != nil:
				t.Fatalf("HammingDistance(%s,%s): %v", words[i], words[j], err)
			case i == j:
				dist[i][j] = 0
			case d == 1:
				dist[i][j] = 1
			default:
				dist[i][j] = math.MaxInt32
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}

	return dist
}

// TestMinLadder_Minimality compares every pair against brute-force distances.
func TestMinLadder_Minimality(t *testing.T) {
	words := abcWords()
	s := doublets.MustNewSolver(lexicon.New(words...))
	dist := allPairsDistances(t, s, words)

	for i, a := range words {
		for j, b := range words {
			minimal := s.MinLadder(a, b)
			anyLadder := s.Ladder(a, b)
			if dist[i][j] >= math.MaxInt32 {
				assert.Empty(t, minimal, "%s→%s", a, b)
				assert.Empty(t, anyLadder, "%s→%s", a, b)
				continue
			}
			require.Len(t, minimal, dist[i][j]+1, "%s→%s: %v", a, b, minimal)
			assert.True(t, s.IsWordLadder(minimal), "%s→%s: %v", a, b, minimal)
			assert.Equal(t, a, minimal[0])
			assert.Equal(t, b, minimal[len(minimal)-1])

			assert.True(t, s.IsWordLadder(anyLadder), "%s→%s: %v", a, b, anyLadder)
			assert.GreaterOrEqual(t, len(anyLadder), len(minimal))
			assert.Equal(t, b, anyLadder[len(anyLadder)-1])
		}
	}
}

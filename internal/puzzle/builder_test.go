package puzzle

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// findWord reports whether word appears in g as a contiguous straight run
// in any of the eight directions.
func findWord(g *Grid, word string, dirs []Direction) bool {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			for _, d := range dirs {
				if runMatches(g, word, r, c, d) {
					return true
				}
			}
		}
	}
	return false
}

func runMatches(g *Grid, word string, row, col int, d Direction) bool {
	for i := 0; i < len(word); i++ {
		r, c := row+d.DR*i, col+d.DC*i
		if r < 0 || r >= g.Rows() || c < 0 || c >= g.Cols() {
			return false
		}
		if g.At(r, c) != word[i] {
			return false
		}
	}
	return true
}

func TestNewBuilder_Validation(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := NewBuilder(Config{Rows: 0, Cols: 5, Letters: []byte("AB")}, newTestRand(1))
		require.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = NewBuilder(Config{Rows: 5, Cols: -1, Letters: []byte("AB")}, newTestRand(1))
		require.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("rejects empty alphabet", func(t *testing.T) {
		_, err := NewBuilder(Config{Rows: 5, Cols: 5}, newTestRand(1))
		require.ErrorIs(t, err, ErrEmptyAlphabet)
	})

	t.Run("collapses duplicate banned words", func(t *testing.T) {
		b, err := NewBuilder(Config{
			Rows: 5, Cols: 5,
			Letters: []byte("AB"),
			Banned:  []string{"BA", "BA", ""},
		}, newTestRand(1))
		require.NoError(t, err)
		assert.Len(t, b.banned, 1)
	})
}

func TestGenerate_PlacedWordsAreRetrievable(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(Config{
		Rows: 10, Cols: 10,
		Words:   []string{"CAT", "DOG", "BIRD"},
		Letters: []byte("XYZ"),
	}, newTestRand(42))
	require.NoError(t, err)

	report, err := b.Generate(context.Background())
	require.NoError(t, err)

	for _, pl := range report.Placed {
		assert.True(t, findWord(b.Grid(), pl.Word, placementDirections),
			"placed word %q not found in grid:\n%s", pl.Word, b.Grid())
	}
}

func TestGenerate_BannedWordNeverAppears(t *testing.T) {
	t.Parallel()

	// Alphabet {A,B}, place "AB", ban "BB": fill must dodge BB next to
	// every placed B, in all eight directions, for every seed.
	for seed := uint64(1); seed <= 25; seed++ {
		b, err := NewBuilder(Config{
			Rows: 5, Cols: 5,
			Words:   []string{"AB"},
			Letters: []byte("AB"),
			Banned:  []string{"BB"},
		}, newTestRand(seed))
		require.NoError(t, err)

		report, err := b.Generate(context.Background())
		require.NoError(t, err, "seed %d", seed)

		assert.False(t, findWord(b.Grid(), "BB", scanDirections),
			"seed %d produced banned word BB:\n%s", seed, b.Grid())
		if len(report.Placed) == 1 {
			assert.True(t, findWord(b.Grid(), "AB", placementDirections), "seed %d", seed)
		}
	}
}

func TestGenerate_BannedReverseOfPlacedWord(t *testing.T) {
	t.Parallel()

	// Banning the reversal of a placed word is self-contradictory: the
	// moment "AB" lands, "BA" exists along the opposite direction, so the
	// fill scan can never come back clean. A grid containing BA must
	// never be emitted; generation fails instead.
	for seed := uint64(1); seed <= 10; seed++ {
		b, err := NewBuilder(Config{
			Rows: 5, Cols: 5,
			Words:   []string{"AB"},
			Letters: []byte("AB"),
			Banned:  []string{"BA"},
		}, newTestRand(seed))
		require.NoError(t, err)

		report, err := b.Generate(context.Background())
		if err != nil {
			require.ErrorIs(t, err, ErrUnsatisfiableFill, "seed %d", seed)
			require.Nil(t, report, "no report on failed generation")
			continue
		}
		// Fill can only succeed when placement itself was exhausted.
		require.Empty(t, report.Placed, "seed %d", seed)
		assert.False(t, findWord(b.Grid(), "BA", scanDirections), "seed %d", seed)
	}
}

func TestGenerate_GridFullyPopulated(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(Config{
		Rows: 8, Cols: 6,
		Words:   []string{"GOPHER"},
		Letters: []byte("QWX"),
	}, newTestRand(7))
	require.NoError(t, err)

	_, err = b.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateFilled, b.State())

	allowed := map[byte]bool{'Q': true, 'W': true, 'X': true}
	for _, ch := range []byte("GOPHER") {
		allowed[ch] = true
	}
	g := b.Grid()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.At(r, c)
			assert.NotEqual(t, Empty, cell, "cell (%d,%d) left empty", r, c)
			assert.True(t, allowed[cell], "cell (%d,%d) holds unexpected letter %q", r, c, cell)
		}
	}
}

func TestGenerate_DeterministicUnderFixedSeed(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Rows: 12, Cols: 12,
		Words:   []string{"ALPHA", "BETA", "GAMMA", "DELTA"},
		Letters: []byte("ABGDELMT"),
		Banned:  []string{"BAD"},
	}

	render := func(seed uint64) string {
		b, err := NewBuilder(cfg, newTestRand(seed))
		require.NoError(t, err)
		_, err = b.Generate(context.Background())
		require.NoError(t, err)
		return b.Grid().String()
	}

	assert.Equal(t, render(99), render(99), "same seed must reproduce the grid bit-for-bit")
}

func TestGenerate_BannedWordIsNeverPlaced(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(Config{
		Rows: 6, Cols: 6,
		Words:   []string{"EVIL", "GOOD"},
		Letters: []byte("XY"),
		Banned:  []string{"EVIL"},
	}, newTestRand(3))
	require.NoError(t, err)

	report, err := b.Generate(context.Background())
	require.NoError(t, err)

	assert.Contains(t, report.Skipped, "EVIL")
	for _, pl := range report.Placed {
		assert.NotEqual(t, "EVIL", pl.Word)
	}
	assert.False(t, findWord(b.Grid(), "EVIL", scanDirections))
}

func TestGenerate_PlacementExhaustionIsNotFatal(t *testing.T) {
	t.Parallel()

	// A word longer than any straight run in a 3x3 grid can never fit.
	b, err := NewBuilder(Config{
		Rows: 3, Cols: 3,
		Words:   []string{"UNPLACEABLE", "OK"},
		Letters: []byte("Z"),
	}, newTestRand(11))
	require.NoError(t, err)

	report, err := b.Generate(context.Background())
	require.NoError(t, err)

	assert.Contains(t, report.Exhausted, "UNPLACEABLE")
	assert.Equal(t, StateFilled, b.State())
}

func TestGenerate_UnsatisfiableFill(t *testing.T) {
	t.Parallel()

	// With a single-letter alphabet and that letter's doubling banned,
	// no fill assignment exists for any grid wider than one cell.
	b, err := NewBuilder(Config{
		Rows: 2, Cols: 2,
		Letters: []byte("A"),
		Banned:  []string{"AA"},
	}, newTestRand(5))
	require.NoError(t, err)

	_, err = b.Generate(context.Background())
	require.ErrorIs(t, err, ErrUnsatisfiableFill)
}

func TestGenerate_SecondCallFails(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(Config{Rows: 4, Cols: 4, Letters: []byte("AB")}, newTestRand(2))
	require.NoError(t, err)

	_, err = b.Generate(context.Background())
	require.NoError(t, err)

	_, err = b.Generate(context.Background())
	require.ErrorIs(t, err, ErrAlreadyGenerated)
}

func TestCanPlace(t *testing.T) {
	t.Parallel()

	b, err := NewBuilder(Config{Rows: 3, Cols: 3, Letters: []byte("Z")}, newTestRand(1))
	require.NoError(t, err)

	assert.True(t, b.canPlace("ABC", 0, 0, Direction{0, 1}), "fits on the top row")
	assert.False(t, b.canPlace("ABCD", 0, 0, Direction{0, 1}), "runs off the right edge")
	assert.False(t, b.canPlace("ABC", 0, 2, Direction{0, 1}), "starts too far right")
	assert.True(t, b.canPlace("ABC", 2, 2, Direction{-1, -1}), "fits up the diagonal")

	// Letter-identity agreement permits crossings, anything else collides.
	b.grid.set(0, 1, 'B')
	assert.True(t, b.canPlace("ABC", 0, 0, Direction{0, 1}))
	b.grid.set(0, 1, 'X')
	assert.False(t, b.canPlace("ABC", 0, 0, Direction{0, 1}))
}

package wordsource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	got := Sanitize([]string{" cat ", "D-O.G", "bird!", "", "  ", "42"})
	assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, got)
}

func TestStatic(t *testing.T) {
	t.Parallel()

	words, err := NewStatic([]string{"CAT", "dog"}).Words(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "dog"}, words, "literal words pass through untouched")
}

type failingSource struct{ err error }

func (f *failingSource) Words(context.Context) ([]string, error) { return nil, f.err }

func TestMerged(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates preserving first-seen order", func(t *testing.T) {
		m := NewMerged(
			NewStatic([]string{"CAT", "DOG"}),
			NewStatic([]string{"DOG", "BIRD", "CAT"}),
		)
		words, err := m.Words(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, words)
	})

	t.Run("propagates the first source failure", func(t *testing.T) {
		boom := errors.New("boom")
		m := NewMerged(NewStatic([]string{"CAT"}), &failingSource{err: boom})
		_, err := m.Words(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("no sources yields an empty list", func(t *testing.T) {
		words, err := NewMerged().Words(context.Background())
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}

func TestNewGemini_RequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	_, err := NewGemini(context.Background(), "farm animals", 10)
	require.Error(t, err)
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

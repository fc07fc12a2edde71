package wordsource

import (
	"context"
	"strings"
)

// Source produces a candidate word list for one batch.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// Static is a Source backed by a literal word list.
type Static struct {
	words []string
}

// NewStatic wraps an already-validated word list in a Source, as-is.
func NewStatic(words []string) *Static {
	return &Static{words: words}
}

// Words implements the Source interface.
func (s *Static) Words(ctx context.Context) ([]string, error) {
	return s.words, nil
}

// Merged is a Source that concatenates the de-duplicated output of several
// sources, preserving first-seen order.
type Merged struct {
	sources []Source
}

// NewMerged combines sources into one. The zero-source case yields an
// empty list, not an error.
func NewMerged(sources ...Source) *Merged {
	return &Merged{sources: sources}
}

// Words implements the Source interface. The first failing source fails
// the whole resolution.
func (m *Merged) Words(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, src := range m.sources {
		words, err := src.Words(ctx)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out, nil
}

// Sanitize normalizes model-produced words: uppercase, letters only,
// empties dropped. Order is preserved.
func Sanitize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		var sb strings.Builder
		for _, r := range strings.ToUpper(strings.TrimSpace(w)) {
			if r >= 'A' && r <= 'Z' {
				sb.WriteRune(r)
			}
		}
		if sb.Len() > 0 {
			out = append(out, sb.String())
		}
	}
	return out
}

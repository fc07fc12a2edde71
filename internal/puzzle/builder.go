package puzzle

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/vk/wordsearchgo/internal/ctxlog"
)

const (
	// maxPlaceAttempts bounds the random retries for placing a single word.
	maxPlaceAttempts = 100
	// maxFillAttempts bounds the letter draws for a single fill cell. The
	// original algorithm redrew forever; the cap turns an unsatisfiable
	// configuration into ErrUnsatisfiableFill instead of a hung worker.
	maxFillAttempts = 1000
)

// State tracks the builder through its generation lifecycle.
type State int

const (
	// StateEmpty is a freshly constructed builder with an all-empty grid.
	StateEmpty State = iota
	// StateWordsPlaced means every placement attempt has run.
	StateWordsPlaced
	// StateFilled is terminal: every cell holds a letter.
	StateFilled
)

// Config carries the already-validated inputs for one puzzle generation.
type Config struct {
	Rows, Cols int
	// Words are the candidate words, in input order. Placement order is
	// shuffled once per generation.
	Words []string
	// Letters is the fill alphabet, sampled uniformly.
	Letters []byte
	// Banned words must never appear in the finished grid in any of the
	// eight directions. Duplicates are tolerated and collapsed.
	Banned []string
}

// Placement records where a successfully placed word landed.
type Placement struct {
	Word     string
	Row, Col int
	Dir      Direction
}

// Report summarizes one generation: what was placed, what was skipped
// because it is banned, and what exhausted its placement attempts.
type Report struct {
	Placed    []Placement
	Skipped   []string
	Exhausted []string
	Duration  time.Duration
}

// Builder constructs a single word-search grid. It owns its grid and its
// random source exclusively; a Builder must not be shared across goroutines.
type Builder struct {
	cfg       Config
	grid      *Grid
	rng       *rand.Rand
	state     State
	banned    []string
	bannedSet map[string]struct{}
}

// NewBuilder validates cfg and returns a builder with an all-empty grid.
// The random source drives both placement and fill; passing sources with
// identical seeds reproduces output bit-for-bit.
func NewBuilder(cfg Config, rng *rand.Rand) (*Builder, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	if len(cfg.Letters) == 0 {
		return nil, ErrEmptyAlphabet
	}

	bannedSet := make(map[string]struct{}, len(cfg.Banned))
	banned := make([]string, 0, len(cfg.Banned))
	for _, w := range cfg.Banned {
		if w == "" {
			continue
		}
		if _, dup := bannedSet[w]; dup {
			continue
		}
		bannedSet[w] = struct{}{}
		banned = append(banned, w)
	}

	return &Builder{
		cfg:       cfg,
		grid:      newGrid(cfg.Rows, cfg.Cols),
		rng:       rng,
		state:     StateEmpty,
		banned:    banned,
		bannedSet: bannedSet,
	}, nil
}

// Grid returns the builder's grid. Callers must treat it as read-only;
// it is only fully populated once Generate has returned successfully.
func (b *Builder) Grid() *Grid { return b.grid }

// State returns the builder's current lifecycle state.
func (b *Builder) State() State { return b.state }

// Generate runs the full construction: shuffle the word list, attempt to
// place every non-banned word, then fill the remaining cells. Placement
// exhaustion is recorded in the report and is not an error; a fill cell
// that cannot be satisfied aborts with ErrUnsatisfiableFill.
func (b *Builder) Generate(ctx context.Context) (*Report, error) {
	if b.state != StateEmpty {
		return nil, ErrAlreadyGenerated
	}
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	words := slices.Clone(b.cfg.Words)
	logger.Debug("Shuffling words.", "count", len(words))
	b.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	report := &Report{}
	for _, word := range words {
		if word == "" {
			continue
		}
		if _, isBanned := b.bannedSet[word]; isBanned {
			logger.Debug("Skipping banned word.", "word", word)
			report.Skipped = append(report.Skipped, word)
			continue
		}
		logger.Debug("Placing word.", "word", word)
		if pl, ok := b.placeWord(word); ok {
			report.Placed = append(report.Placed, pl)
		} else {
			logger.Warn("Failed to place word.", "word", word, "attempts", maxPlaceAttempts)
			report.Exhausted = append(report.Exhausted, word)
		}
	}
	b.state = StateWordsPlaced

	if err := b.fill(ctx); err != nil {
		return nil, err
	}
	b.state = StateFilled

	report.Duration = time.Since(start)
	return report, nil
}

// canPlace reports whether word fits at (row, col) along dir: every cell it
// would occupy is in bounds and either empty or already holding the exact
// letter required at that offset. Pure, O(len(word)).
func (b *Builder) canPlace(word string, row, col int, dir Direction) bool {
	last := len(word) - 1
	if !b.grid.inBounds(row+dir.DR*last, col+dir.DC*last) {
		return false
	}
	for i := 0; i < len(word); i++ {
		cell := b.grid.At(row+dir.DR*i, col+dir.DC*i)
		if cell != Empty && cell != word[i] {
			return false
		}
	}
	return true
}

// placeWord tries up to maxPlaceAttempts random (direction, start cell)
// draws and writes the word on the first one that fits. The start cell is
// drawn uniformly over the whole grid regardless of word length; draws
// that run out of bounds are simply rejected.
func (b *Builder) placeWord(word string) (Placement, bool) {
	for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
		dir := placementDirections[b.rng.IntN(len(placementDirections))]
		row := b.rng.IntN(b.cfg.Rows)
		col := b.rng.IntN(b.cfg.Cols)
		if !b.canPlace(word, row, col, dir) {
			continue
		}
		for i := 0; i < len(word); i++ {
			b.grid.set(row+dir.DR*i, col+dir.DC*i, word[i])
		}
		return Placement{Word: word, Row: row, Col: col, Dir: dir}, true
	}
	return Placement{}, false
}

// matchesAt reports whether word appears starting at (row, col) along dir.
// Running off the grid rejects the run.
func (b *Builder) matchesAt(word string, row, col int, dir Direction) bool {
	last := len(word) - 1
	if !b.grid.inBounds(row+dir.DR*last, col+dir.DC*last) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if b.grid.At(row+dir.DR*i, col+dir.DC*i) != word[i] {
			return false
		}
	}
	return true
}

// containsBanned scans the entire grid: every cell, every banned word,
// every one of the eight directions. True on the first match. This runs
// after every tentative fill letter and dominates generation cost.
func (b *Builder) containsBanned() bool {
	for r := 0; r < b.cfg.Rows; r++ {
		for c := 0; c < b.cfg.Cols; c++ {
			for _, word := range b.banned {
				for _, dir := range scanDirections {
					if b.matchesAt(word, r, c, dir) {
						return true
					}
				}
			}
		}
	}
	return false
}

// fill assigns a letter to every still-empty cell in row-major order. Each
// cell redraws until the full-grid scan comes back clean or the attempt
// cap is hit.
func (b *Builder) fill(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Filling empty cells.")

	for r := 0; r < b.cfg.Rows; r++ {
		for c := 0; c < b.cfg.Cols; c++ {
			if b.grid.At(r, c) != Empty {
				continue
			}
			if !b.fillCell(r, c) {
				return fmt.Errorf("cell (%d,%d): %w", r, c, ErrUnsatisfiableFill)
			}
		}
	}
	return nil
}

// fillCell draws uniform letters for one cell, keeping the first whose
// tentative write leaves the grid free of banned words. A rejected letter
// is cleared back to Empty before the next draw.
func (b *Builder) fillCell(row, col int) bool {
	for attempt := 0; attempt < maxFillAttempts; attempt++ {
		letter := b.cfg.Letters[b.rng.IntN(len(b.cfg.Letters))]
		b.grid.set(row, col, letter)
		if !b.containsBanned() {
			return true
		}
		b.grid.set(row, col, Empty)
	}
	return false
}

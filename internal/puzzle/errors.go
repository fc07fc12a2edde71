package puzzle

import "errors"

// Sentinel errors for builder construction and generation.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("puzzle: rows and cols must be positive")
	// ErrEmptyAlphabet indicates the fill alphabet has no letters.
	ErrEmptyAlphabet = errors.New("puzzle: fill alphabet must not be empty")
	// ErrAlreadyGenerated indicates Generate was called on a finished builder.
	ErrAlreadyGenerated = errors.New("puzzle: builder has already generated its grid")
	// ErrUnsatisfiableFill indicates no letter in the alphabet could fill a
	// cell without completing a banned word within the attempt cap.
	ErrUnsatisfiableFill = errors.New("puzzle: fill constraints unsatisfiable")
)

package config

// Model is the unified, format-agnostic representation of everything the
// user asked for: one Batch per puzzle block, already validated.
type Model struct {
	Batches []*Batch
}

// Batch describes one puzzle block: the grid geometry, the word material,
// and how many independent puzzles to generate from it.
type Batch struct {
	// Name is the block label, unique across all loaded files.
	Name string
	Rows int
	Cols int
	// Letters is the fill alphabet as single characters.
	Letters []byte
	// Words are the literal candidate words from the block.
	Words []string
	// Banned words must never appear in any generated grid.
	Banned []string
	// Count is the number of independent puzzles to generate.
	Count int
	// Output is the destination file path; empty means stdout.
	Output string
	// Theme, when non-empty, requests an AI-generated word list that is
	// merged with Words before generation.
	Theme string
	// ThemeWordCount is how many themed words to request.
	ThemeWordCount int
}

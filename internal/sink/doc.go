// Package sink owns the textual output of finished puzzles. A sink writes
// labeled blocks; blocks from concurrent generations are appended atomically
// and never interleave, though their order is unspecified.
package sink

// Package puzzle implements the word-search grid construction algorithm:
// randomized word placement with bounds and collision checking, followed by
// a random fill of the remaining cells that rejects any letter which would
// complete a banned word anywhere on the grid.
//
// A Builder owns exactly one grid and one random source and is never shared
// between concurrent generations. Construction moves through a fixed state
// machine (empty -> words placed -> filled); the finished grid is read-only.
package puzzle

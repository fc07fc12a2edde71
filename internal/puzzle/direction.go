package puzzle

// Direction is a unit step vector defining the orientation of a straight
// run of cells. DR and DC are each in {-1, 0, 1} and never both zero.
type Direction struct {
	DR, DC int
}

// placementDirections is the 6-direction set used when placing words.
// It deliberately excludes the (1,-1) and (-1,1) diagonals.
var placementDirections = []Direction{
	{0, 1}, {1, 0}, {1, 1}, {0, -1}, {-1, 0}, {-1, -1},
}

// scanDirections is the full 8-direction set used by the banned-word scan.
// The scan covers the superset of placementDirections: a banned run can
// only arise via fill letters or the placement set, but checking all eight
// keeps the invariant independent of how the letters got there.
var scanDirections = []Direction{
	{0, 1}, {1, 0}, {1, 1}, {0, -1}, {-1, 0}, {-1, -1}, {1, -1}, {-1, 1},
}

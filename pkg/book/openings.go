package book

// StandardOpenings is a small table of well-known main lines, replayed by
// NewFromLines to build the book cmd/corvid ships with. Grounded on the
// teacher's pkg/sargon.Book (a static []engine.Line passed through
// NewBook at init time) but widened to the eight first moves spec.md's
// testable scenario 4 names as acceptable initial-position replies:
// e2e4, d2d4, c2c4, g1f3, b1c3, f2f4, b2b3, g2g3.
var StandardOpenings = []Line{
	{"e2e4", "e7e5", "g1f3", "b8c6"},
	{"e2e4", "c7c5", "g1f3", "d7d6"},
	{"e2e4", "e7e6", "d2d4", "d7d5"},
	{"e2e4", "c7c6", "d2d4", "d7d5"},
	{"d2d4", "d7d5", "c2c4", "e7e6"},
	{"d2d4", "g8f6", "c2c4", "g7g6"},
	{"c2c4", "e7e5", "b1c3", "g8f6"},
	{"c2c4", "c7c5", "g1f3", "g8f6"},
	{"g1f3", "d7d5", "g2g3", "c7c5"},
	{"b1c3", "d7d5", "d2d4", "g8f6"},
	{"f2f4", "d7d5", "g1f3", "g8f6"},
	{"b2b3", "e7e5", "c1b2", "b8c6"},
	{"g2g3", "d7d5", "f1g2", "e7e5"},
}

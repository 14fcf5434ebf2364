// Package eval is the static position evaluator: material, phased
// piece-square tables, pawn structure, piece activity and king safety,
// all expressed on the centipawn Score scale shared with the search
// package's alpha-beta window.
package eval

import "fmt"

// Score is a centipawn evaluation from the side-to-move viewpoint.
// Positive favors the side to move.
type Score int32

const (
	NegInfScore Score = -40000
	InfScore    Score = 40000

	// MateScore is the magnitude used for an immediate checkmate. Search
	// nodes that detect mate at ply p from the root report
	// MateScore-Score(p) (see search.TerminalScore), so shallower mates
	// report a larger magnitude than deeper ones.
	MateScore Score = 30000

	// mateThreshold separates ordinary evaluations (always well inside
	// ±30000 per the evaluator's own contract) from mate-distance scores.
	mateThreshold Score = 29000
)

func (s Score) Negate() Score {
	return -s
}

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}

func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// IsMate reports whether s encodes a forced mate (ok), and if so the
// number of plies to the mate. It does not report which side delivers
// it; the sign of s says that.
func (s Score) IsMate() (plies int, ok bool) {
	switch {
	case s > mateThreshold:
		return int(MateScore - s), true
	case s < -mateThreshold:
		return int(MateScore + s), true
	default:
		return 0, false
	}
}

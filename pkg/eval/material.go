package eval

import "github.com/corvidchess/corvid/pkg/rules"

// Material values in centipawns, indexed by rules.Piece.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValue = [rules.NumPieces]int{
	rules.NoPiece: 0,
	rules.Pawn:    PawnValue,
	rules.Knight:  KnightValue,
	rules.Bishop:  BishopValue,
	rules.Rook:    RookValue,
	rules.Queen:   QueenValue,
	rules.King:    KingValue,
}

// Value returns the material value of piece, 0 for rules.NoPiece.
func Value(piece rules.Piece) int {
	return pieceValue[piece]
}

// phaseWeight is the non-pawn-material contribution of one instance of
// piece to the game-phase scalar, following the standard tapered-eval
// weighting (both sides' 8 minors + 4 rooks + 2 queens == totalPhase).
var phaseWeight = [rules.NumPieces]int{
	rules.Knight: 1,
	rules.Bishop: 1,
	rules.Rook:   2,
	rules.Queen:  4,
}

const totalPhase = 24

// Phase returns the game-phase scalar on a 0 (all material still on the
// board) to 256 (bare-king endgame) scale, derived from remaining
// non-pawn material.
func Phase(p *rules.Position) int {
	phase := totalPhase
	for c := rules.Color(0); c < rules.NumColors; c++ {
		for _, piece := range []rules.Piece{rules.Knight, rules.Bishop, rules.Rook, rules.Queen} {
			phase -= p.Piece(c, piece).PopCount() * phaseWeight[piece]
		}
	}
	if phase < 0 {
		phase = 0
	}
	return (phase*256 + totalPhase/2) / totalPhase
}

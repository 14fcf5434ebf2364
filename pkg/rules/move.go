package rules

import "fmt"

// Move identifies a (possibly illegal) transition between positions, along
// with the contextual metadata needed to apply it without re-deriving it
// from the board. Equality is structural over From/To/Promotion, matching
// what a UCI move string ("e7e8q") actually distinguishes.
type Move struct {
	From, To  Square
	Piece     Piece // piece moving
	Promotion Piece // NoPiece unless a promotion
	Capture   Piece // NoPiece unless a capture (set even for en passant: Pawn)

	EnPassant  bool     // capture is en passant (captured pawn is not on To)
	DoublePush bool     // two-square pawn move, sets the en passant target
	Castle     Castling // which castling right this move exercises, if any
}

func (m Move) IsCapture() bool {
	return m.Capture != NoPiece
}

// IsQuiet is true for moves that are neither captures nor promotions — the
// only moves eligible for killer-move and history-heuristic bookkeeping.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && m.Promotion == NoPiece
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the move in pure algebraic coordinate notation (UCI).
func (m Move) String() string {
	if m.Promotion != NoPiece {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// ParseUCIMove parses pure algebraic coordinate notation, such as "a2a4" or
// "a7a8q". The result carries only From/To/Promotion; callers must match it
// against a legal move to recover the rest of the metadata (see
// Position.FindLegalMove).
func ParseUCIMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("rules: invalid move %q", str)
	}
	from, ok := ParseSquare(runes[0], runes[1])
	if !ok {
		return Move{}, fmt.Errorf("rules: invalid origin square in %q", str)
	}
	to, ok := ParseSquare(runes[2], runes[3])
	if !ok {
		return Move{}, fmt.Errorf("rules: invalid destination square in %q", str)
	}

	promotion := NoPiece
	if len(runes) == 5 {
		p, ok := ParsePiece(runes[4])
		if !ok || p == Pawn || p == King {
			return Move{}, fmt.Errorf("rules: invalid promotion in %q", str)
		}
		promotion = p
	}
	return Move{From: from, To: to, Promotion: promotion}, nil
}

package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// EPD renders the first four EPD/FEN fields (piece placement, side to move,
// castling rights, en passant target) — the part of a position that the
// opening book keys on, per spec §4.7. Unlike a full FEN record it omits
// the halfmove clock and fullmove number, which are irrelevant to book
// lookup and would otherwise make lines miss their cached key after an
// unrelated quiet move elsewhere in the game.
func (p *Position) EPD() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		blanks := 0
		for f := 0; f < NumFiles; f++ {
			sq := NewSquare(File(f), Rank(r))
			c, piece, ok := p.Square(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteString(printPiece(c, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > int(Rank1) {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%v %v %v %v", sb.String(), p.turn, p.castling, ep)
}

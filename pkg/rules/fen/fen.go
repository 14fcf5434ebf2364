// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/corvidchess/corvid/pkg/rules"
)

// Initial is the FEN of the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a 6-field FEN record into a Position.
func Decode(fen string) (*rules.Position, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %v: %q", len(parts), fen)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	turn, ok := decodeColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("fen: invalid active color: %q", fen)
	}

	castling, ok := decodeCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("fen: invalid castling rights: %q", fen)
	}

	var ep rules.Square
	epSet := false
	if parts[3] != "-" {
		sq, err := rules.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en passant target: %q", fen)
		}
		ep, epSet = sq, true
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("fen: invalid halfmove clock: %q", fen)
	}
	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("fen: invalid fullmove number: %q", fen)
	}

	return rules.NewPosition(placements, turn, castling, ep, epSet, halfmove, fullmove)
}

// Encode renders a Position back to a 6-field FEN record.
func Encode(p *rules.Position) string {
	var sb strings.Builder
	for r := int(rules.Rank8); r >= int(rules.Rank1); r-- {
		blanks := 0
		for f := 0; f < rules.NumFiles; f++ {
			sq := rules.NewSquare(rules.File(f), rules.Rank(r))
			c, piece, ok := p.Square(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(c, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > int(rules.Rank1) {
			sb.WriteByte('/')
		}
	}

	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), p.Turn(), p.Castling(), ep, p.HalfmoveClock(), p.FullmoveNumber())
}

func decodePlacement(field string) ([]rules.Placement, error) {
	var ret []rules.Placement

	r, f := int(rules.Rank8), 0
	for _, ch := range field {
		switch {
		case ch == '/':
			r--
			f = 0
		case unicode.IsDigit(ch):
			f += int(ch - '0')
		case unicode.IsLetter(ch):
			c, piece, ok := decodePiece(ch)
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece %q in %q", ch, field)
			}
			if f >= rules.NumFiles || r < 0 {
				return nil, fmt.Errorf("fen: piece placement overflows board: %q", field)
			}
			ret = append(ret, rules.Placement{Square: rules.NewSquare(rules.File(f), rules.Rank(r)), Color: c, Piece: piece})
			f++
		default:
			return nil, fmt.Errorf("fen: unexpected character %q in %q", ch, field)
		}
	}
	return ret, nil
}

func decodeColor(field string) (rules.Color, bool) {
	switch field {
	case "w":
		return rules.White, true
	case "b":
		return rules.Black, true
	default:
		return 0, false
	}
}

func decodeCastling(field string) (rules.Castling, bool) {
	if field == "-" {
		return rules.NoCastling, true
	}
	var c rules.Castling
	for _, ch := range field {
		switch ch {
		case 'K':
			c |= rules.WhiteKingside
		case 'Q':
			c |= rules.WhiteQueenside
		case 'k':
			c |= rules.BlackKingside
		case 'q':
			c |= rules.BlackQueenside
		default:
			return 0, false
		}
	}
	return c, true
}

func decodePiece(r rune) (rules.Color, rules.Piece, bool) {
	piece, ok := rules.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return rules.White, piece, true
	}
	return rules.Black, piece, true
}

func printPiece(c rules.Color, p rules.Piece) rune {
	r := []rune(p.String())[0]
	if c == rules.White {
		return unicode.ToUpper(r)
	}
	return r
}

package rules

// pseudoLegalMoves generates every move for the side to move that is legal
// except possibly for leaving its own king in check. LegalMoves filters
// these down by trial application.
func (p *Position) pseudoLegalMoves() []Move {
	var moves []Move
	turn := p.turn
	own := p.pieces[turn][NoPiece]
	occ := p.Occupancy()

	moves = p.genPawnMoves(moves, turn, occ)

	for piece := Knight; piece <= King; piece++ {
		bb := p.pieces[turn][piece]
		for bb != 0 {
			var from Square
			bb, from = bb.PopLSB()
			targets := Attackboard(occ, from, piece) &^ own
			for targets != 0 {
				var to Square
				targets, to = targets.PopLSB()
				moves = append(moves, p.makeOfficerMove(from, to, piece))
			}
		}
	}

	moves = p.genCastlingMoves(moves, turn, occ)
	return moves
}

func (p *Position) makeOfficerMove(from, to Square, piece Piece) Move {
	m := Move{From: from, To: to, Piece: piece}
	if _, cap, ok := p.Square(to); ok {
		m.Capture = cap
	}
	return m
}

func (p *Position) genPawnMoves(moves []Move, turn Color, occ Bitboard) []Move {
	pawns := p.pieces[turn][Pawn]
	promoRank := PawnPromotionRank(turn)
	dir := PawnDirection(turn)

	for bb := pawns; bb != 0; {
		var from Square
		bb, from = bb.PopLSB()

		// Single and double push.
		oneStep := Square(int(from) + dir*8)
		if oneStep < NumSquares && occ.IsEmpty(oneStep) {
			if oneStep.Rank() == promoRank {
				moves = append(moves, promotions(from, oneStep, NoPiece, false)...)
			} else {
				moves = append(moves, Move{From: from, To: oneStep, Piece: Pawn})
				if from.Rank() == PawnHomeRank(turn) {
					twoStep := Square(int(from) + dir*16)
					if occ.IsEmpty(twoStep) {
						moves = append(moves, Move{From: from, To: twoStep, Piece: Pawn, DoublePush: true})
					}
				}
			}
		}

		// Captures (including en passant).
		targets := PawnCaptureboard(turn, BitMask(from))
		for bb2 := targets; bb2 != 0; {
			var to Square
			bb2, to = bb2.PopLSB()

			if c, cap, ok := p.Square(to); ok && c == turn.Opponent() {
				if to.Rank() == promoRank {
					moves = append(moves, promotions(from, to, cap, false)...)
				} else {
					moves = append(moves, Move{From: from, To: to, Piece: Pawn, Capture: cap})
				}
				continue
			}
			if ep, ok := p.EnPassant(); ok && to == ep {
				moves = append(moves, Move{From: from, To: to, Piece: Pawn, Capture: Pawn, EnPassant: true})
			}
		}
	}
	return moves
}

func promotions(from, to Square, capture Piece, ep bool) []Move {
	promos := []Piece{Queen, Rook, Bishop, Knight}
	ret := make([]Move, 0, len(promos))
	for _, pr := range promos {
		ret = append(ret, Move{From: from, To: to, Piece: Pawn, Promotion: pr, Capture: capture, EnPassant: ep})
	}
	return ret
}

func (p *Position) genCastlingMoves(moves []Move, turn Color, occ Bitboard) []Move {
	opp := turn.Opponent()
	if turn == White {
		if p.castling.Has(WhiteKingside) && occ.IsEmpty(sqF1) && occ.IsEmpty(sqG1) &&
			!p.IsAttacked(sqE1, opp) && !p.IsAttacked(sqF1, opp) && !p.IsAttacked(sqG1, opp) {
			moves = append(moves, Move{From: sqE1, To: sqG1, Piece: King, Castle: WhiteKingside})
		}
		if p.castling.Has(WhiteQueenside) && occ.IsEmpty(sqD1) && occ.IsEmpty(sqC1) && occ.IsEmpty(sqB1) &&
			!p.IsAttacked(sqE1, opp) && !p.IsAttacked(sqD1, opp) && !p.IsAttacked(sqC1, opp) {
			moves = append(moves, Move{From: sqE1, To: sqC1, Piece: King, Castle: WhiteQueenside})
		}
	} else {
		if p.castling.Has(BlackKingside) && occ.IsEmpty(sqF8) && occ.IsEmpty(sqG8) &&
			!p.IsAttacked(sqE8, opp) && !p.IsAttacked(sqF8, opp) && !p.IsAttacked(sqG8, opp) {
			moves = append(moves, Move{From: sqE8, To: sqG8, Piece: King, Castle: BlackKingside})
		}
		if p.castling.Has(BlackQueenside) && occ.IsEmpty(sqD8) && occ.IsEmpty(sqC8) && occ.IsEmpty(sqB8) &&
			!p.IsAttacked(sqE8, opp) && !p.IsAttacked(sqD8, opp) && !p.IsAttacked(sqC8, opp) {
			moves = append(moves, Move{From: sqE8, To: sqC8, Piece: King, Castle: BlackQueenside})
		}
	}
	return moves
}

var (
	sqE1 = NewSquare(FileE, Rank1)
	sqF1 = NewSquare(FileF, Rank1)
	sqG1 = NewSquare(FileG, Rank1)
	sqD1 = NewSquare(FileD, Rank1)
	sqC1 = NewSquare(FileC, Rank1)
	sqB1 = NewSquare(FileB, Rank1)
	sqA1 = NewSquare(FileA, Rank1)
	sqH1 = NewSquare(FileH, Rank1)

	sqE8 = NewSquare(FileE, Rank8)
	sqF8 = NewSquare(FileF, Rank8)
	sqG8 = NewSquare(FileG, Rank8)
	sqD8 = NewSquare(FileD, Rank8)
	sqC8 = NewSquare(FileC, Rank8)
	sqB8 = NewSquare(FileB, Rank8)
	sqA8 = NewSquare(FileA, Rank8)
	sqH8 = NewSquare(FileH, Rank8)
)

// HasLegalMove reports whether the side to move has at least one legal
// move, stopping at the first one found. Cheaper than len(LegalMoves())
// > 0 since it skips legality-checking the remaining pseudo-legal moves
// once one is confirmed legal.
func (p *Position) HasLegalMove() bool {
	turn := p.turn
	for _, m := range p.pseudoLegalMoves() {
		next := p.apply(m)
		if !next.IsAttacked(next.KingSquare(turn), turn.Opponent()) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for the side to move, in unspecified
// order — move ordering is the search package's responsibility, not the
// façade's.
func (p *Position) LegalMoves() []Move {
	turn := p.turn
	candidates := p.pseudoLegalMoves()

	ret := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		next := p.apply(m)
		if !next.IsAttacked(next.KingSquare(turn), turn.Opponent()) {
			ret = append(ret, m)
		}
	}
	return ret
}

// FindLegalMove matches a bare UCI move (only From/To/Promotion populated)
// against the legal move list, recovering the full metadata. Used for moves
// arriving over the driver protocol and for opening-book/TT moves, neither
// of which carry move metadata.
func (p *Position) FindLegalMove(candidate Move) (Move, bool) {
	for _, m := range p.LegalMoves() {
		if m.Equals(candidate) {
			return m, true
		}
	}
	return Move{}, false
}

// Push applies m and returns the resulting position, or ok=false if m is
// not legal in p. Non-mutating: p is left untouched either way.
func (p *Position) Push(m Move) (*Position, bool) {
	if _, ok := p.FindLegalMove(m); !ok {
		return nil, false
	}
	return p.apply(m), true
}

// apply performs the move on a clone without any legality check. Callers
// must already know m is (at least) pseudo-legal.
func (p *Position) apply(m Move) *Position {
	next := p.Clone()
	turn := p.turn

	next.xor(m.From, turn, m.Piece)

	switch {
	case m.EnPassant:
		capSq := Square(int(m.To) - PawnDirection(turn)*8)
		next.xor(capSq, turn.Opponent(), Pawn)
	case m.IsCapture():
		next.xor(m.To, turn.Opponent(), m.Capture)
	}

	placed := m.Piece
	if m.Promotion != NoPiece {
		placed = m.Promotion
	}
	next.xor(m.To, turn, placed)

	if m.Castle != NoCastling {
		from, to := castlingRookSquares(m.Castle)
		next.xor(from, turn, Rook)
		next.xor(to, turn, Rook)
	}

	next.castling = p.castling &^ castlingRightsLost(m, turn)

	if m.DoublePush {
		next.ep = Square(int(m.From) + PawnDirection(turn)*8)
		next.epSet = true
	} else {
		next.epSet = false
	}

	if m.Piece == Pawn || m.IsCapture() {
		next.halfmove = 0
	} else {
		next.halfmove = p.halfmove + 1
	}
	if turn == Black {
		next.fullmove = p.fullmove + 1
	}
	next.turn = turn.Opponent()

	return next
}

func castlingRookSquares(c Castling) (from, to Square) {
	switch c {
	case WhiteKingside:
		return sqH1, sqF1
	case WhiteQueenside:
		return sqA1, sqD1
	case BlackKingside:
		return sqH8, sqF8
	case BlackQueenside:
		return sqA8, sqD8
	default:
		panic("rules: not a castling move")
	}
}

// castlingRightsLost returns the rights a move revokes: the mover's own
// rights if it moves the king or a rook off its home square, and the
// opponent's corresponding right if it captures a rook on its home square.
func castlingRightsLost(m Move, turn Color) Castling {
	var lost Castling
	if turn == White {
		if m.Piece == King {
			lost |= WhiteKingside | WhiteQueenside
		}
		if m.From == sqH1 {
			lost |= WhiteKingside
		}
		if m.From == sqA1 {
			lost |= WhiteQueenside
		}
		if m.To == sqH8 {
			lost |= BlackKingside
		}
		if m.To == sqA8 {
			lost |= BlackQueenside
		}
	} else {
		if m.Piece == King {
			lost |= BlackKingside | BlackQueenside
		}
		if m.From == sqH8 {
			lost |= BlackKingside
		}
		if m.From == sqA8 {
			lost |= BlackQueenside
		}
		if m.To == sqH1 {
			lost |= WhiteKingside
		}
		if m.To == sqA1 {
			lost |= WhiteQueenside
		}
	}
	return lost
}

// SwapTurn yields a position identical to p except the side to move is
// flipped and en passant rights are cleared — the "null move" used by
// null-move pruning. Fails (ok=false) when the side to move is in check,
// since passing while in check is not a legal chess abstraction.
func (p *Position) SwapTurn() (next *Position, ok bool) {
	if p.IsCheck() {
		return nil, false
	}
	next = p.Clone()
	next.turn = p.turn.Opponent()
	next.epSet = false
	next.halfmove = p.halfmove + 1
	if p.turn == Black {
		next.fullmove = p.fullmove + 1
	}
	return next, true
}

// HasNonPawnMaterial reports whether color c has at least one piece other
// than pawns and king — used to gate null-move pruning away from king+pawn
// endgames where zugzwang makes the heuristic unsound.
func (p *Position) HasNonPawnMaterial(c Color) bool {
	return p.pieces[c][Knight]|p.pieces[c][Bishop]|p.pieces[c][Rook]|p.pieces[c][Queen] != 0
}

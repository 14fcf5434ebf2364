package eval

import "github.com/corvidchess/corvid/pkg/rules"

// Evaluate returns a static score for p from the perspective of the side
// to move. On terminal positions it returns the fixed contract values
// (checkmate: -MateScore, stalemate: 0) regardless of how it was reached;
// callers that need mate-distance discrimination (the main search tree)
// compute that separately rather than through Evaluate.
func Evaluate(p *rules.Position) Score {
	switch p.Outcome() {
	case rules.Checkmate:
		return -MateScore
	case rules.Stalemate:
		return 0
	}

	phase := Phase(p)
	mgScore, egScore := taper(p, phase)

	score := Score((mgScore*(256-phase) + egScore*phase) / 256)
	if p.Turn() == rules.Black {
		score = -score
	}

	// Mobility is added once, from the side-to-move viewpoint only (not
	// split and signed per color like the other structural terms) — an
	// asymmetry inherited deliberately from the reference evaluator.
	score += Score(len(p.LegalMoves()) / 2)

	return score
}

// taper computes the midgame and endgame scores from White's viewpoint,
// combining material, piece-square tables and structural terms.
func taper(p *rules.Position, phase int) (mg, eg int) {
	for c := rules.Color(0); c < rules.NumColors; c++ {
		sign := 1
		if c == rules.Black {
			sign = -1
		}
		cmg, ceg := materialAndPST(p, c)
		s := structural(p, c, phase)
		cmg += s
		ceg += s
		mg += sign * cmg
		eg += sign * ceg
	}
	return mg, eg
}

func materialAndPST(p *rules.Position, c rules.Color) (mg, eg int) {
	for piece := rules.Pawn; piece <= rules.King; piece++ {
		bb := p.Piece(c, piece)
		value := Value(piece)
		for bb != rules.EmptyBitboard {
			var sq rules.Square
			bb, sq = bb.PopLSB()
			view := sq
			if c == rules.Black {
				view = sq.Mirror()
			}
			pmg, peg := pst(piece, view)
			mg += value + pmg
			eg += value + peg
		}
	}
	return mg, eg
}

// structural folds in the non-PST positional terms for color c: bishop
// pair, rook placement, knight outposts and king shield. It returns a
// single centipawn adjustment applied identically to both the mg and eg
// taper buckets; only pawn-structure terms below are phase independent
// enough for that simplification to be reasonable. Mobility is handled
// separately by Evaluate itself, since the spec defines it as a single
// side-to-move-only term rather than a per-color one (see Evaluate).
func structural(p *rules.Position, c rules.Color, phase int) int {
	score := 0
	score += pawnStructure(p, c)
	score += bishopPair(p, c)
	score += rookPlacement(p, c)
	score += knightOutposts(p, c)
	if phase < 128 {
		score += kingShield(p, c)
	}
	return score
}

func bishopPair(p *rules.Position, c rules.Color) int {
	if p.Piece(c, rules.Bishop).PopCount() >= 2 {
		return 50
	}
	return 0
}

func pawnStructure(p *rules.Position, c rules.Color) int {
	pawns := p.Piece(c, rules.Pawn)
	enemyPawns := p.Piece(c.Opponent(), rules.Pawn)
	score := 0
	for f := rules.FileA; f < rules.NumFiles; f++ {
		file := pawns & rules.BitFile(f)
		n := file.PopCount()
		if n > 1 {
			score -= 12 * (n - 1) // doubled
		}
		if n > 0 {
			isolated := true
			if f > rules.FileA && (pawns&rules.BitFile(f-1)) != rules.EmptyBitboard {
				isolated = false
			}
			if f < rules.FileH && (pawns&rules.BitFile(f+1)) != rules.EmptyBitboard {
				isolated = false
			}
			if isolated {
				score -= 15
			}
		}
	}

	bb := pawns
	for bb != rules.EmptyBitboard {
		var sq rules.Square
		bb, sq = bb.PopLSB()
		if isPassed(sq, c, enemyPawns) {
			rank := sq.Rank()
			dist := int(rank)
			if c == rules.Black {
				dist = int(rules.Rank8 - rank)
			}
			score += 10 + dist*dist*2
		}
	}
	return score
}

// isPassed reports whether a pawn of color c on sq has no enemy pawn
// able to block or capture it on its own file or either adjacent file,
// anywhere ahead of it.
func isPassed(sq rules.Square, c rules.Color, enemyPawns rules.Bitboard) bool {
	f, r := sq.File(), int(sq.Rank())
	for df := -1; df <= 1; df++ {
		file := int(f) + df
		if file < 0 || file > int(rules.FileH) {
			continue
		}
		blockers := enemyPawns & rules.BitFile(rules.File(file))
		for blockers != rules.EmptyBitboard {
			var bsq rules.Square
			blockers, bsq = blockers.PopLSB()
			br := int(bsq.Rank())
			if c == rules.White && br > r {
				return false
			}
			if c == rules.Black && br < r {
				return false
			}
		}
	}
	return true
}

func rookPlacement(p *rules.Position, c rules.Color) int {
	ownPawns := p.Piece(c, rules.Pawn)
	enemyPawns := p.Piece(c.Opponent(), rules.Pawn)
	seventh := rules.Rank7
	if c == rules.Black {
		seventh = rules.Rank2
	}
	score := 0
	rooks := p.Piece(c, rules.Rook)
	for rooks != rules.EmptyBitboard {
		var sq rules.Square
		rooks, sq = rooks.PopLSB()
		file := rules.BitFile(sq.File())
		switch {
		case ownPawns&file == rules.EmptyBitboard && enemyPawns&file == rules.EmptyBitboard:
			score += 20 // open file
		case ownPawns&file == rules.EmptyBitboard:
			score += 10 // semi-open file
		}
		if sq.Rank() == seventh {
			score += 20
		}
	}
	return score
}

func knightOutposts(p *rules.Position, c rules.Color) int {
	ownPawns := p.Piece(c, rules.Pawn)
	score := 0
	knights := p.Piece(c, rules.Knight)
	for knights != rules.EmptyBitboard {
		var sq rules.Square
		knights, sq = knights.PopLSB()
		rank := sq.Rank()
		advanced := (c == rules.White && rank >= rules.Rank4) || (c == rules.Black && rank <= rules.Rank5)
		if !advanced {
			continue
		}
		supported := false
		f := sq.File()
		for df := -1; df <= 1; df += 2 {
			file := int(f) + df
			if file < 0 || file > int(rules.FileH) {
				continue
			}
			if ownPawns&rules.BitFile(rules.File(file)) != rules.EmptyBitboard {
				supported = true
				break
			}
		}
		if supported {
			score += 18
		}
	}
	return score
}

// kingShield rewards pawns still standing on the three files in front of
// the king, only evaluated while the game is still mostly in the
// midgame (phase < 128).
func kingShield(p *rules.Position, c rules.Color) int {
	king := p.KingSquare(c)
	pawns := p.Piece(c, rules.Pawn)
	shieldRank := rules.PawnHomeRank(c)
	score := 0
	f := int(king.File())
	for df := -1; df <= 1; df++ {
		file := f + df
		if file < 0 || file > int(rules.FileH) {
			continue
		}
		if pawns&rules.BitFile(rules.File(file))&rules.BitRank(shieldRank) != rules.EmptyBitboard {
			score += 8
		}
	}
	return score
}

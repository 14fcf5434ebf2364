package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// reverseFutilityMargin is the centipawn cushion reverse futility pruning
// requires the static evaluation to clear beta by, at depth 1 only.
const reverseFutilityMargin = eval.Score(160)

// nullMoveReduction is the fixed depth reduction applied to the verification
// search after a null move.
const nullMoveReduction = 3

// iidMinDepth and iidReduction configure internal iterative deepening: when
// a node has no hash move to order by, a shallower search first finds one.
const (
	iidMinDepth   = 4
	iidReduction  = 2
)

// AlphaBeta runs a negamax alpha-beta search of pos to depth plies (ply is
// the distance from the root, needed for mate-distance scoring; killers
// are indexed by remaining depth instead) and returns the score from the side-to-move's
// perspective. ctx cancellation is checked at every node; a cancelled
// search returns a zero-value score immediately, so callers must check
// ctx themselves (typically via the iterative-deepening driver, which
// discards a depth not completed before cancellation).
func (s *Searcher) AlphaBeta(ctx context.Context, pos *rules.Position, depth, ply int, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	s.nodes++

	isCheck := pos.IsCheck()
	if isCheck {
		depth++ // check extension: never let a check resolve at the horizon
	}

	if depth <= 0 {
		return s.Quiescence(ctx, pos, ply, alpha, beta)
	}

	if !pos.HasLegalMove() {
		return TerminalScore(pos, ply)
	}

	hash := s.Zobrist.Hash(pos)
	probe := s.TT.Probe(hash, depth, alpha, beta)
	if probe.Cutoff {
		return probe.Score
	}
	alpha, beta = probe.Alpha, probe.Beta
	hashMove, hasHashMove := probe.Move, probe.HasMove

	origAlpha := alpha
	turn := pos.Turn()

	if !isCheck && depth == 1 {
		// Fail-soft: returning the static eval rather than beta is sound
		// (the caller only ever compares the returned value against its
		// own window), but the spec's own pseudocode returns beta here.
		if static := eval.Evaluate(pos); static-reverseFutilityMargin >= beta {
			return static
		}
	}

	if !isCheck && depth >= nullMoveReduction && pos.HasNonPawnMaterial(turn) {
		if null, ok := pos.SwapTurn(); ok {
			score := -s.AlphaBeta(ctx, null, depth-nullMoveReduction, ply+1, -beta, -beta+1)
			if score >= beta {
				return beta
			}
		}
	}

	if !hasHashMove && depth >= iidMinDepth {
		s.AlphaBeta(ctx, pos, depth-iidReduction, ply, alpha, beta)
		if probe2 := s.TT.Probe(hash, 0, alpha, beta); probe2.HasMove {
			hashMove, hasHashMove = probe2.Move, true
		}
	}

	moves := pos.LegalMoves()
	order.Sort(moves, hashMove, hasHashMove, depth, s.Killers, s.History, turn)

	var best eval.Score = eval.NegInfScore
	var bestMove rules.Move
	hasBestMove := false

	for i, m := range moves {
		next, ok := pos.Push(m)
		if !ok {
			continue // defensive: LegalMoves/Push must agree, but never trust silently
		}

		var score eval.Score
		switch {
		case i == 0:
			score = -s.AlphaBeta(ctx, next, depth-1, ply+1, -beta, -alpha)
		default:
			reduction := 0
			if depth >= 3 && i >= 4 && m.IsQuiet() {
				reduction = 1 + min(i/4, depth/3)
			}
			score = -s.AlphaBeta(ctx, next, depth-1-reduction, ply+1, -alpha-1, -alpha)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -s.AlphaBeta(ctx, next, depth-1, ply+1, -beta, -alpha)
			}
		}

		if score > best {
			best = score
			bestMove = m
			hasBestMove = true
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if m.IsQuiet() {
				s.Killers.Add(depth, m)
				s.History.Bump(turn, m, depth)
			}
			break
		}
	}

	bound := tt.Exact
	switch {
	case best <= origAlpha:
		bound = tt.Upper
	case best >= beta:
		bound = tt.Lower
	}
	s.TT.Store(hash, depth, best, bound, bestMove, hasBestMove)

	return best
}

package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence extends the search along capture sequences past the nominal
// horizon, to avoid misjudging a position where the side to move is
// mid-exchange. It searches only captures (filtered from the full legal
// move list); a position reached here with no legal captures is scored
// by the stand-pat evaluation. eval.Evaluate scores checkmate and
// stalemate by its fixed values, without the mate-distance adjustment
// AlphaBeta applies via TerminalScore.
func (s *Searcher) Quiescence(ctx context.Context, pos *rules.Position, ply int, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	s.nodes++

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	turn := pos.Turn()
	captures := captureMoves(pos)
	order.Sort(captures, rules.Move{}, false, order.MaxKillerDepth, s.Killers, s.History, turn)

	for _, m := range captures {
		next, ok := pos.Push(m)
		if !ok {
			continue
		}
		score := -s.Quiescence(ctx, next, ply+1, -beta, -alpha)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func captureMoves(pos *rules.Position) []rules.Move {
	all := pos.LegalMoves()
	captures := make([]rules.Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

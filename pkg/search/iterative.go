package search

import (
	"context"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// aspirationWindow is the half-width of the window tried around the
// previous iteration's score before falling back to a full re-search.
const aspirationWindow = eval.Score(50)

// Limits bounds one FindBestMove call. DepthLimit of 0 means search until
// ctx is cancelled (the caller is expected to supply a time-bounded ctx
// in that case).
type Limits struct {
	DepthLimit int
}

// Result is the outcome of a completed (or cancelled-midway) search.
type Result struct {
	Move       rules.Move
	HasMove    bool
	Score      eval.Score
	Depth      int
	Nodes      uint64
}

// FindBestMove runs iterative deepening from depth 1 up to limits.DepthLimit
// (or until ctx is cancelled if unset), using an aspiration window seeded
// from the previous iteration's score once depth >= 2. It returns the best
// move found by the deepest fully completed iteration; a cancelled,
// partially searched iteration is discarded rather than trusted, since its
// score may be an artifact of an incomplete move loop.
func (s *Searcher) FindBestMove(ctx context.Context, pos *rules.Position, limits Limits) Result {
	var result Result

	score := eval.Score(0)
	for depth := 1; limits.DepthLimit == 0 || depth <= limits.DepthLimit; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}

		iterScore, move, ok := s.searchWithAspiration(ctx, pos, depth, score)
		if contextx.IsCancelled(ctx) {
			break
		}
		if !ok {
			break // no legal moves at all: checkmate or stalemate at the root
		}

		score = iterScore
		result = Result{Move: move, HasMove: true, Score: score, Depth: depth, Nodes: s.nodes}
		logw.Debugf(ctx, "Searched depth=%v score=%v move=%v nodes=%v", depth, score, move, s.nodes)

		if _, isMate := score.IsMate(); isMate {
			break // found a forced mate; deeper iterations cannot improve on it
		}
	}
	return result
}

// searchWithAspiration runs one iterative-deepening iteration at depth,
// first trying a narrow window around prevScore and falling back to a
// full-width re-search if the result falls outside it. Returns ok=false
// when pos has no legal moves (the root is already game over), when ctx
// is cancelled, or when no legal root move can be read back from the
// transposition table.
func (s *Searcher) searchWithAspiration(ctx context.Context, pos *rules.Position, depth int, prevScore eval.Score) (eval.Score, rules.Move, bool) {
	if !pos.HasLegalMove() {
		return 0, rules.Move{}, false
	}

	alpha, beta := eval.NegInfScore, eval.InfScore
	if depth >= 2 {
		alpha, beta = prevScore-aspirationWindow, prevScore+aspirationWindow
	}

	for {
		score := s.rootSearch(ctx, pos, depth, alpha, beta)
		if contextx.IsCancelled(ctx) {
			return 0, rules.Move{}, false
		}
		if score <= alpha {
			alpha = eval.NegInfScore
			continue
		}
		if score >= beta {
			beta = eval.InfScore
			continue
		}

		hash := s.Zobrist.Hash(pos)
		probe := s.TT.Probe(hash, 0, eval.NegInfScore, eval.InfScore)
		if !probe.HasMove {
			return score, rules.Move{}, false
		}
		move, ok := pos.FindLegalMove(probe.Move)
		if !ok {
			return score, rules.Move{}, false
		}
		return score, move, true
	}
}

// rootSearch is AlphaBeta at ply 0, pulled out as its own entry point so
// callers never have to pass a root alpha/beta/ply triple inline.
func (s *Searcher) rootSearch(ctx context.Context, pos *rules.Position, depth int, alpha, beta eval.Score) eval.Score {
	return s.AlphaBeta(ctx, pos, depth, 0, alpha, beta)
}

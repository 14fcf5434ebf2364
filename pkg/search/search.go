// Package search implements the engine's move selection: iterative
// deepening over a negamax alpha-beta tree with a transposition table,
// null-move and reverse-futility pruning, internal iterative deepening,
// principal-variation search with late-move reductions, and a
// capture-only quiescence search at the horizon.
package search

import (
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/tt"
)

// Searcher owns the mutable state that persists across the plies of one
// search call and, for the transposition/history/killer tables, across
// the iterations of one iterative-deepening session: the transposition
// table, move-ordering killer and history tables, and the Zobrist
// hasher used to key the table. A fresh Searcher is created per
// ucinewgame (see pkg/engine), matching the teacher's per-game table
// lifetime.
type Searcher struct {
	TT      *tt.Table
	Zobrist *rules.ZobristTable
	Killers *order.KillerTable
	History *order.HistoryTable

	nodes uint64
}

// NewSearcher builds a Searcher with a fresh transposition table sized
// by ttCapacity (see tt.DefaultCapacity) and a Zobrist table seeded with
// seed.
func NewSearcher(seed int64, ttCapacity int) *Searcher {
	return &Searcher{
		TT:      tt.New(ttCapacity),
		Zobrist: rules.NewZobristTable(seed),
		Killers: &order.KillerTable{},
		History: &order.HistoryTable{},
	}
}

// Nodes returns the number of nodes (AlphaBeta and Quiescence calls)
// visited since the Searcher was created; the count is never reset.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// TerminalScore is the ply-aware value for a position with no legal
// moves: checkmate magnitude shrinks by one centipawn-of-mate-distance
// per ply further from the root, so a mate found deeper in the tree
// never outranks a shallower one already found. AlphaBeta uses it for
// its single game-over check (HasLegalMove), made before the
// transposition probe and move generation.
func TerminalScore(pos *rules.Position, ply int) eval.Score {
	if pos.IsCheck() {
		return -eval.MateScore + eval.Score(ply)
	}
	return 0
}

// Package tt is the transposition table: a Zobrist-hash-keyed cache of
// previously searched nodes, used both to short-circuit re-search of a
// position reached by a different move order and to seed move ordering
// with the previous best move found for a position.
package tt

import (
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/rules"
)

// Bound classifies how an Entry's Score relates to the true minimax value
// of the node it was computed for.
type Bound uint8

const (
	// Exact is the true minimax value: every move was searched inside
	// the (alpha, beta) window without a cutoff.
	Exact Bound = iota
	// Lower means the true value is at least Score: a beta cutoff fired.
	Lower
	// Upper means the true value is at most Score: every move scored
	// below alpha (a fail-low node).
	Upper
)

// Entry is one stored search result.
type Entry struct {
	Depth   int
	Score   eval.Score
	Bound   Bound
	Move    rules.Move
	HasMove bool
}

// DefaultCapacity is a soft sizing hint for New, not an enforced limit —
// the underlying map is free to grow past it.
const DefaultCapacity = 2_000_000

// Table is a transposition table. Not safe for concurrent use; the search
// package is single-threaded per search call.
type Table struct {
	entries map[rules.ZobristHash]Entry
}

// New returns an empty table, sized with capacity as an allocation hint.
func New(capacity int) *Table {
	return &Table{entries: make(map[rules.ZobristHash]Entry, capacity)}
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Clear() {
	t.entries = make(map[rules.ZobristHash]Entry, DefaultCapacity)
}

// Probe implements the read side of the transposition-table protocol: a
// depth-sufficient entry tightens or resolves the (alpha, beta) window,
// and any stored move (even from a shallower entry) is surfaced as a
// move-ordering hint regardless of whether the depth requirement is met.
type ProbeResult struct {
	// Cutoff is true when the stored entry alone resolves the node —
	// Score is then the value the caller should return directly.
	Cutoff bool
	Score  eval.Score

	// Alpha and Beta are the (possibly tightened) search window the
	// caller should continue with when Cutoff is false.
	Alpha, Beta eval.Score

	Move    rules.Move
	HasMove bool
}

func (t *Table) Probe(hash rules.ZobristHash, depth int, alpha, beta eval.Score) ProbeResult {
	res := ProbeResult{Alpha: alpha, Beta: beta}

	e, ok := t.entries[hash]
	if !ok {
		return res
	}
	res.Move, res.HasMove = e.Move, e.HasMove

	if e.Depth < depth {
		return res
	}

	switch e.Bound {
	case Exact:
		res.Cutoff = true
		res.Score = e.Score
		return res
	case Lower:
		if e.Score > res.Alpha {
			res.Alpha = e.Score
		}
	case Upper:
		if e.Score < res.Beta {
			res.Beta = e.Score
		}
	}

	if res.Alpha >= res.Beta {
		res.Cutoff = true
		res.Score = e.Score
	}
	return res
}

// Store records a search result for hash, unconditionally overwriting any
// existing entry — a simple always-replace scheme, adequate for a table
// backed by a Go map that simply grows rather than evicting.
func (t *Table) Store(hash rules.ZobristHash, depth int, score eval.Score, bound Bound, move rules.Move, hasMove bool) {
	t.entries[hash] = Entry{Depth: depth, Score: score, Bound: bound, Move: move, HasMove: hasMove}
}

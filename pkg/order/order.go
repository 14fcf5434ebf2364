// Package order ranks a node's legal moves before the search tries them:
// the hash move first, then captures by a static-exchange estimate, then
// killer quiet moves, then promotions, then everything else by history
// heuristic score. Getting a cutoff-causing move early is what makes
// alpha-beta pruning effective in practice.
package order

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/rules"
)

// Sort keys, most urgent (most negative) first.
const (
	hashMoveKey    = -4_000_000
	captureKeyBase = -2_000_000
	killer0Key     = -900_000
	killer1Key     = -800_000
	promotionKey   = -700_000
)

// MaxKillerDepth bounds the killer table: killer lookups and inserts at
// depth >= MaxKillerDepth are silently skipped.
const MaxKillerDepth = 64

// KillerTable holds up to two killer quiet moves per remaining depth — a
// move that caused a beta cutoff at that depth in a sibling node, and so
// is worth trying early again. Move{} (From==To==a1, never a legal move)
// is the "no killer" sentinel.
type KillerTable struct {
	moves [MaxKillerDepth][2]rules.Move
}

// Add records m as the newest killer at depth, demoting the previous
// newest into the second slot. A no-op past MaxKillerDepth or if m is
// already the newest killer at depth.
func (k *KillerTable) Add(depth int, m rules.Move) {
	if depth >= MaxKillerDepth {
		return
	}
	if k.moves[depth][0].Equals(m) {
		return
	}
	k.moves[depth][1] = k.moves[depth][0]
	k.moves[depth][0] = m
}

// slot returns which killer slot (0 or 1) m occupies at depth, if any.
func (k *KillerTable) slot(depth int, m rules.Move) (int, bool) {
	if depth >= MaxKillerDepth {
		return 0, false
	}
	for i, km := range k.moves[depth] {
		if km.Piece != rules.NoPiece && km.Equals(m) {
			return i, true
		}
	}
	return 0, false
}

// HistoryTable scores quiet moves by how often they have caused cutoffs
// in the past, indexed by side to move, origin and destination square.
// Counters only grow — there is no decay or periodic clearing, following
// the common justification that relative ordering among quiet moves is
// what matters, not the absolute magnitude.
type HistoryTable struct {
	counters [rules.NumColors][64][64]uint32
}

// Bump rewards m for causing (or participating in the PV of) a cutoff
// found at the given remaining depth, weighted by depth^2 so cutoffs
// found deep in the tree count far more than shallow ones.
func (h *HistoryTable) Bump(turn rules.Color, m rules.Move, depth int) {
	h.counters[turn][m.From][m.To] += uint32(depth * depth)
}

func (h *HistoryTable) score(turn rules.Color, m rules.Move) int {
	return int(h.counters[turn][m.From][m.To])
}

// Key returns m's sort key relative to hashMove/killers/history at the
// given remaining depth for the side to move, ascending (most urgent is
// most negative — see Sort).
func Key(m rules.Move, hashMove rules.Move, hasHashMove bool, depth int, killers *KillerTable, history *HistoryTable, turn rules.Color) int {
	if hasHashMove && m.Equals(hashMove) {
		return hashMoveKey
	}
	if m.IsCapture() {
		return captureKeyBase - seeEstimate(m)
	}
	if slot, ok := killers.slot(depth, m); ok {
		if slot == 0 {
			return killer0Key
		}
		return killer1Key
	}
	if m.Promotion != rules.NoPiece {
		return promotionKey
	}
	return -history.score(turn, m)
}

// seeEstimate is a cheap static-exchange stand-in: captured piece value
// minus a tenth of the capturing piece's value, so equal captures order
// by which attacker is cheapest and any capture outranks losing a queen
// for a pawn. Non-capture moves are scored as if a pawn took a pawn —
// SEE keys are only even read when the hash-move check already failed,
// so the concrete number for a non-capture never actually decides
// anything, but the function must still return a defined value.
func seeEstimate(m rules.Move) int {
	victim, attacker := rules.Pawn, rules.Pawn
	if m.IsCapture() {
		victim = m.Capture
		attacker = m.Piece
	}
	return eval.Value(victim) - eval.Value(attacker)/10
}

type keyedMove struct {
	move rules.Move
	key  int
}

// Sort orders moves ascending by Key, most urgent first, in place.
func Sort(moves []rules.Move, hashMove rules.Move, hasHashMove bool, depth int, killers *KillerTable, history *HistoryTable, turn rules.Color) {
	keyed := make([]keyedMove, len(moves))
	for i, m := range moves {
		keyed[i] = keyedMove{move: m, key: Key(m, hashMove, hasHashMove, depth, killers, history, turn)}
	}
	sort.Slice(keyed, func(i, j int) bool {
		return keyed[i].key < keyed[j].key
	})
	for i, km := range keyed {
		moves[i] = km.move
	}
}

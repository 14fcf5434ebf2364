// Package book is the opening book façade: a small static table of known
// good replies keyed by position, consulted before the search tree runs
// at all.
package book

import (
	"fmt"
	"math/rand"

	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/rules/fen"
)

// Book maps an EPD position key (see rules.Position.EPD) to the set of
// moves previously established as playable from it.
type Book interface {
	// Find returns the candidate moves for pos, or ok=false if pos is not
	// in the book. Once ok is false for the current game, callers should
	// stop consulting the book for the remainder of that game — a miss
	// usually means play has left known theory.
	Find(pos *rules.Position) (moves []rules.Move, ok bool)
}

// Line is a named sequence of moves from the initial position, in UCI
// notation: e.g. []string{"e2e4", "c7c5"} for the Sicilian.
type Line []string

type staticBook struct {
	byEPD map[string][]rules.Move
}

// Empty is a book with no lines; Find always reports a miss.
var Empty Book = staticBook{byEPD: map[string][]rules.Move{}}

// NewFromLines builds a book by replaying each line from the initial
// position, recording every move played from every position visited
// along the way (so a transposition reached via a different move order
// still hits the book). An invalid or illegal move anywhere in a line is
// an error: lines are meant to be copied from real games, not hand
// typed, so a bad entry indicates a transcription bug worth catching
// immediately rather than silently dropping.
func NewFromLines(lines []Line) (Book, error) {
	b := staticBook{byEPD: map[string][]rules.Move{}}
	for _, line := range lines {
		pos, err := fen.Decode(fen.Initial)
		if err != nil {
			return nil, err
		}
		for _, uci := range line {
			candidate, err := rules.ParseUCIMove(uci)
			if err != nil {
				return nil, fmt.Errorf("book: line %v: %w", line, err)
			}
			m, ok := pos.FindLegalMove(candidate)
			if !ok {
				return nil, fmt.Errorf("book: line %v: %v is not legal", line, uci)
			}

			key := pos.EPD()
			if !containsMove(b.byEPD[key], m) {
				b.byEPD[key] = append(b.byEPD[key], m)
			}

			next, ok := pos.Push(m)
			if !ok {
				return nil, fmt.Errorf("book: line %v: %v failed to apply", line, uci)
			}
			pos = next
		}
	}
	return b, nil
}

func containsMove(moves []rules.Move, m rules.Move) bool {
	for _, existing := range moves {
		if existing.Equals(m) {
			return true
		}
	}
	return false
}

func (b staticBook) Find(pos *rules.Position) ([]rules.Move, bool) {
	moves, ok := b.byEPD[pos.EPD()]
	return moves, ok && len(moves) > 0
}

// Selector narrows a book's candidate list down to the single move an
// engine will actually play, so callers don't each reimplement random
// selection. Unlike the reference engine's noise selection (which draws
// on wall-clock nanoseconds and so is never reproducible), this is
// backed by an explicit, seedable source — recommended for testing and
// for any deterministic replay of a game.
type Selector struct {
	rnd *rand.Rand
}

func NewSelector(seed int64) *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly random move from moves. Panics if moves is
// empty — callers are expected to check Book.Find's ok result first.
func (s *Selector) Pick(moves []rules.Move) rules.Move {
	return moves[s.rnd.Intn(len(moves))]
}

package tt_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/stretchr/testify/assert"
)

func TestProbeMissReturnsWindowUnchanged(t *testing.T) {
	table := tt.New(16)
	res := table.Probe(rules.ZobristHash(1), 4, eval.Score(-100), eval.Score(100))
	assert.False(t, res.Cutoff)
	assert.False(t, res.HasMove)
	assert.Equal(t, eval.Score(-100), res.Alpha)
	assert.Equal(t, eval.Score(100), res.Beta)
}

func TestExactEntryCutsOffAtSufficientDepth(t *testing.T) {
	table := tt.New(16)
	move := rules.Move{From: rules.NewSquare(rules.FileE, rules.Rank2), To: rules.NewSquare(rules.FileE, rules.Rank4), Piece: rules.Pawn}
	table.Store(rules.ZobristHash(7), 6, eval.Score(50), tt.Exact, move, true)

	res := table.Probe(rules.ZobristHash(7), 6, eval.Score(-100), eval.Score(100))
	assert.True(t, res.Cutoff)
	assert.Equal(t, eval.Score(50), res.Score)
	assert.True(t, res.HasMove)
	assert.True(t, res.Move.Equals(move))
}

func TestShallowEntryStillYieldsMoveHintButNoCutoff(t *testing.T) {
	table := tt.New(16)
	move := rules.Move{From: rules.NewSquare(rules.FileD, rules.Rank2), To: rules.NewSquare(rules.FileD, rules.Rank4), Piece: rules.Pawn}
	table.Store(rules.ZobristHash(3), 2, eval.Score(50), tt.Exact, move, true)

	res := table.Probe(rules.ZobristHash(3), 8, eval.Score(-100), eval.Score(100))
	assert.False(t, res.Cutoff)
	assert.True(t, res.HasMove)
	assert.True(t, res.Move.Equals(move))
}

func TestLowerBoundTightensAlpha(t *testing.T) {
	table := tt.New(16)
	table.Store(rules.ZobristHash(9), 4, eval.Score(30), tt.Lower, rules.Move{}, false)

	res := table.Probe(rules.ZobristHash(9), 4, eval.Score(-100), eval.Score(100))
	assert.False(t, res.Cutoff)
	assert.Equal(t, eval.Score(30), res.Alpha)
}

func TestUpperBoundBelowAlphaCutsOff(t *testing.T) {
	table := tt.New(16)
	table.Store(rules.ZobristHash(11), 4, eval.Score(-60), tt.Upper, rules.Move{}, false)

	res := table.Probe(rules.ZobristHash(11), 4, eval.Score(-50), eval.Score(100))
	assert.True(t, res.Cutoff)
}

package rules_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestSquare(t *testing.T) {
	assert.Equal(t, rules.NewSquare(rules.FileC, rules.Rank2), rules.NewSquare(rules.FileC, rules.Rank2))
	assert.Equal(t, rules.NewSquare(rules.FileA, rules.Rank1).String(), "a1")
	assert.Equal(t, rules.NewSquare(rules.FileH, rules.Rank8).String(), "h8")

	sq, err := rules.ParseSquareStr("e4")
	assert.NoError(t, err)
	assert.Equal(t, rules.NewSquare(rules.FileE, rules.Rank4), sq)

	_, err = rules.ParseSquareStr("z9")
	assert.Error(t, err)
}

func TestSquareMirror(t *testing.T) {
	assert.Equal(t, rules.NewSquare(rules.FileE, rules.Rank8), rules.NewSquare(rules.FileE, rules.Rank1).Mirror())
	assert.Equal(t, rules.NewSquare(rules.FileA, rules.Rank1), rules.NewSquare(rules.FileA, rules.Rank8).Mirror())
}

func TestBitboardFileRank(t *testing.T) {
	f := rules.BitFile(rules.FileA)
	assert.True(t, f.IsSet(rules.NewSquare(rules.FileA, rules.Rank1)))
	assert.False(t, f.IsSet(rules.NewSquare(rules.FileB, rules.Rank1)))

	r := rules.BitRank(rules.Rank1)
	assert.Equal(t, 8, r.PopCount())
}

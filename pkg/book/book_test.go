package book_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHitsAndMisses(t *testing.T) {
	b, err := book.NewFromLines([]book.Line{
		{"e2e4", "c7c5"},
		{"e2e4", "e7e5"},
		{"d2d4", "d7d5"},
	})
	require.NoError(t, err)

	start, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves, ok := b.Find(start)
	require.True(t, ok)
	assert.Len(t, moves, 2, "e2e4 and d2d4 both seen from the initial position")

	afterE4, ok := start.Push(mustFind(t, start, "e2e4"))
	require.True(t, ok)
	moves, ok = b.Find(afterE4)
	require.True(t, ok)
	assert.Len(t, moves, 2, "c7c5 and e7e5 both seen after 1. e4")

	deepLine, ok := afterE4.Push(mustFind(t, afterE4, "c7c5"))
	require.True(t, ok)
	deepLine, ok = deepLine.Push(mustFind(t, deepLine, "g1f3"))
	require.True(t, ok)
	_, ok = b.Find(deepLine)
	assert.False(t, ok, "position outside any recorded line should miss")
}

func TestEmptyBookAlwaysMisses(t *testing.T) {
	start, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	_, ok := book.Empty.Find(start)
	assert.False(t, ok)
}

func TestSelectorIsDeterministicForAFixedSeed(t *testing.T) {
	b, err := book.NewFromLines([]book.Line{{"e2e4"}, {"d2d4"}, {"c2c4"}, {"g1f3"}})
	require.NoError(t, err)

	start, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	moves, ok := b.Find(start)
	require.True(t, ok)

	a := book.NewSelector(42).Pick(moves)
	c := book.NewSelector(42).Pick(moves)
	assert.True(t, a.Equals(c))
}

func mustFind(t *testing.T, pos *rules.Position, uci string) rules.Move {
	t.Helper()
	candidate, err := rules.ParseUCIMove(uci)
	require.NoError(t, err)
	m, ok := pos.FindLegalMove(candidate)
	require.True(t, ok, uci)
	return m
}

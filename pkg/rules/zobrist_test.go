package rules_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobristStableAndSensitive(t *testing.T) {
	zt := rules.NewZobristTable(1)

	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	h1 := zt.Hash(pos)
	h2 := zt.Hash(pos)
	assert.Equal(t, h1, h2, "hashing is pure")

	next, ok := pos.Push(mustMove(t, pos, "e2e4"))
	require.True(t, ok)
	assert.NotEqual(t, h1, zt.Hash(next), "a move must change the hash")
}

func TestZobristEnPassantParticipates(t *testing.T) {
	zt := rules.NewZobristTable(1)

	withEP, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	require.NoError(t, err)
	withoutEP, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)

	assert.NotEqual(t, zt.Hash(withEP), zt.Hash(withoutEP))
}

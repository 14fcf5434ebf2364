package rules_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/rules"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perft(t *testing.T, p *rules.Position, depth int) int64 {
	t.Helper()
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range p.LegalMoves() {
		next, ok := p.Push(m)
		require.True(t, ok)
		nodes += perft(t, next, depth-1)
	}
	return nodes
}

// TestPerftInitial checks move-generation counts against the well known
// perft results for the standard starting position. See
// https://www.chessprogramming.org/Perft_Results.
func TestPerftInitial(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	tests := []struct {
		depth int
		nodes int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.nodes, perft(t, pos, tt.depth), "depth=%v", tt.depth)
	}
}

func TestCheckmateDetection(t *testing.T) {
	wpos, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	mated, ok := wpos.Push(mustMove(t, wpos, "a1a8"))
	require.True(t, ok)

	assert.Equal(t, rules.Checkmate, mated.Outcome())
	assert.Empty(t, mated.LegalMoves())
}

func TestStalemateDetection(t *testing.T) {
	pos, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, rules.Stalemate, pos.Outcome())
	assert.False(t, pos.IsCheck())
}

func TestDoublePushSetsEnPassantTarget(t *testing.T) {
	pos, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)

	next, ok := pos.Push(mustMove(t, pos, "d2d4"))
	require.True(t, ok)

	ep, epOK := next.EnPassant()
	assert.True(t, epOK && ep == rules.NewSquare(rules.FileD, rules.Rank3), "d2d4 sets d3 as the en passant target even though no black pawn can capture there")
}

func mustMove(t *testing.T, p *rules.Position, uci string) rules.Move {
	t.Helper()
	m, err := rules.ParseUCIMove(uci)
	require.NoError(t, err)
	legal, ok := p.FindLegalMove(m)
	require.True(t, ok, uci)
	return legal
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next, ok := pos.Push(mustMove(t, pos, "a1a8"))
	require.True(t, ok)

	assert.False(t, next.Castling().Has(rules.BlackQueenside), "capturing black's a8 rook should revoke BlackQueenside")
	assert.True(t, next.Castling().Has(rules.BlackKingside))
}

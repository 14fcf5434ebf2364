package search_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindsMateInOne(t *testing.T) {
	// White to move, Ra1-a8 is mate.
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(1, 1024)
	result := s.FindBestMove(context.Background(), pos, search.Limits{DepthLimit: 4})

	require.True(t, result.HasMove)
	assert.Equal(t, "a1a8", result.Move.String())
	plies, isMate := result.Score.IsMate()
	assert.True(t, isMate)
	assert.Equal(t, 1, plies)
}

func TestAvoidsStalemateTrap(t *testing.T) {
	// White is up a queen and must not stalemate black; Qg6 would stalemate,
	// most other moves keep winning.
	pos, err := fen.Decode("7k/8/8/8/8/8/6Q1/6K1 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(1, 1024)
	result := s.FindBestMove(context.Background(), pos, search.Limits{DepthLimit: 3})
	require.True(t, result.HasMove)

	next, ok := pos.Push(result.Move)
	require.True(t, ok)
	assert.NotEqual(t, 0, len(next.LegalMoves()), "search must not choose a stalemating move while winning")
}

func TestQuiescenceAvoidsHangingCaptureHorizonEffect(t *testing.T) {
	// Black queen attacks White's undefended queen; a 0-ply static eval at
	// this exact node would miss the hanging piece, but quiescence must
	// not, since the capture is available immediately.
	pos, err := fen.Decode("4k3/8/8/8/3q4/8/7K/3Q4 b - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(1, 1024)
	score := s.Quiescence(context.Background(), pos, 0, eval.NegInfScore, eval.InfScore)
	assert.Greater(t, int32(score), int32(500), "black to move should find Qxd1 winning a queen")
}

func TestFindBestMoveRespectsCancellation(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := search.NewSearcher(1, 1024)
	result := s.FindBestMove(ctx, pos, search.Limits{DepthLimit: 10})
	assert.False(t, result.HasMove, "a search cancelled before its first iteration completes reports no move")
}

func TestNullMoveDoesNotMisevaluateZugzwangishPosition(t *testing.T) {
	// King and pawn endgame: HasNonPawnMaterial is false for both sides, so
	// null-move pruning must be skipped entirely rather than producing an
	// unsound cutoff.
	pos, err := fen.Decode("8/8/8/3k4/3P4/3K4/8/8 w - - 0 1")
	require.NoError(t, err)

	s := search.NewSearcher(1, 1024)
	result := s.FindBestMove(context.Background(), pos, search.Limits{DepthLimit: 4})
	require.True(t, result.HasMove)
}

package engine_test

import (
	"context"
	"testing"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetAndMoveTrackPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "corvidchess")

	require.Equal(t, fen.Initial, e.Position())

	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.NotEqual(t, fen.Initial, e.Position())

	require.NoError(t, e.Reset(ctx, fen.Initial))
	assert.Equal(t, fen.Initial, e.Position())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "corvidchess")

	assert.Error(t, e.Move(ctx, "e2e5"), "pawn cannot jump three squares")
}

func TestFindBestMoveReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "corvidchess", engine.WithOptions(engine.Options{}))
	e.SetDepthLimit(2)

	result, err := e.FindBestMove(ctx)
	require.NoError(t, err)
	assert.True(t, result.HasMove)
}

func TestFindBestMoveConsultsBookFirst(t *testing.T) {
	ctx := context.Background()
	b, err := book.NewFromLines([]book.Line{{"e2e4"}})
	require.NoError(t, err)

	e := engine.New(ctx, "corvid", "corvidchess", engine.WithBook(b), engine.WithZobristSeed(7))
	e.SetDepthLimit(20) // would be far too slow to actually run; book hit must short-circuit it

	result, err := e.FindBestMove(ctx)
	require.NoError(t, err)
	require.True(t, result.HasMove)
	assert.Equal(t, "e2e4", result.Move.String())
}

func TestFindBestMoveOnCheckmateReturnsError(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "corvidchess")
	require.NoError(t, e.Reset(ctx, "k7/1Q6/1K6/8/8/8/8/8 b - - 0 1"))
	e.SetDepthLimit(3)

	_, err := e.FindBestMove(ctx)
	assert.Error(t, err)
}

package eval_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/rules/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateIsPure(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, eval.Evaluate(pos), eval.Evaluate(pos))
}

func TestEvaluateSymmetricAtStart(t *testing.T) {
	// Material/PST/structural terms are dead equal at the start, but the
	// mobility term is only ever added from the side-to-move viewpoint
	// (see eval.Evaluate), so White to move gets a small positive bonus
	// equal to half its own legal move count.
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	want := eval.Score(len(pos.LegalMoves()) / 2)
	assert.Equal(t, want, eval.Evaluate(pos))
}

func TestEvaluateCheckmate(t *testing.T) {
	pos, err := fen.Decode("k7/1Q6/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, -eval.MateScore, eval.Evaluate(pos))
}

func TestEvaluateStalemate(t *testing.T) {
	pos, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, eval.Score(0), eval.Evaluate(pos))
}

func TestMaterialImbalanceFavorsSide(t *testing.T) {
	// White is up a full rook.
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.Positive(t, int32(eval.Evaluate(pos)))
}

func TestPhaseRange(t *testing.T) {
	start, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Zero(t, eval.Phase(start))

	bare, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 256, eval.Phase(bare))
}

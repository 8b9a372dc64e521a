package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treecanon/builder"
	"github.com/katalvlaran/treecanon/tree"
)

// TestFromPrufer_Known decodes hand-checkable sequences.
func TestFromPrufer_Known(t *testing.T) {
	// empty sequence → the two-node tree
	pair, err := builder.FromPrufer(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, pair.NodeCount())
	assert.Equal(t, []tree.Edge{{U: 0, V: 1}}, pair.Edges())

	// [0,0] → the 4-node star centered on 0
	star, err := builder.FromPrufer([]int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 4, star.NodeCount())
	assert.Equal(t, 3, star.EdgeCount())
	assert.Equal(t, 3, degreeOf(t, star, 0))

	// invalid entries
	_, err = builder.FromPrufer([]int{0, 7})
	assert.ErrorIs(t, err, builder.ErrBadPrufer)
	_, err = builder.FromPrufer([]int{-1, 0})
	assert.ErrorIs(t, err, builder.ErrBadPrufer)
}

// TestToPrufer_Known encodes hand-checkable trees.
func TestToPrufer_Known(t *testing.T) {
	// the 4-node star centered on 0 encodes to [0,0]
	star, err := builder.Star(4)
	require.NoError(t, err)
	seq, err := builder.ToPrufer(star)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, seq)

	// trees below three nodes encode to nil
	pair, err := builder.Path(2)
	require.NoError(t, err)
	seq, err = builder.ToPrufer(pair)
	require.NoError(t, err)
	assert.Nil(t, seq)

	// malformed inputs are rejected
	cyc, err := tree.New(3)
	require.NoError(t, err)
	require.NoError(t, cyc.AddEdge(0, 1))
	require.NoError(t, cyc.AddEdge(1, 2))
	require.NoError(t, cyc.AddEdge(2, 0))
	_, err = builder.ToPrufer(cyc)
	assert.ErrorIs(t, err, builder.ErrNotATree)

	_, err = builder.ToPrufer(nil)
	assert.ErrorIs(t, err, builder.ErrNotATree)
}

// TestPrufer_RoundTrip relies on Cayley's bijection: encode(decode(seq))
// must reproduce seq exactly.
func TestPrufer_RoundTrip(t *testing.T) {
	sequences := [][]int{
		{0, 0},
		{3, 3, 3, 3},
		{1, 2, 3, 4, 5},
		{4, 1, 3, 4, 1, 0},
	}
	for _, seq := range sequences {
		decoded, err := builder.FromPrufer(seq)
		require.NoError(t, err)
		assert.Equal(t, len(seq)+2, decoded.NodeCount())
		assert.Equal(t, len(seq)+1, decoded.EdgeCount())

		encoded, err := builder.ToPrufer(decoded)
		require.NoError(t, err)
		assert.Equal(t, seq, encoded)
	}
}

// TestRandom checks determinism per seed and basic tree shape.
func TestRandom(t *testing.T) {
	a, err := builder.Random(30, 42)
	require.NoError(t, err)
	b, err := builder.Random(30, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	assert.Equal(t, 30, a.NodeCount())
	assert.Equal(t, 29, a.EdgeCount())

	// tiny sizes fall back to the unique shape
	two, err := builder.Random(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, two.EdgeCount())

	_, err = builder.Random(-1, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

// TestRelabel checks topology preservation and permutation validation.
func TestRelabel(t *testing.T) {
	p, err := builder.Path(4)
	require.NoError(t, err)

	renamed, err := builder.Relabel(p, []int{3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []tree.Edge{{U: 3, V: 2}, {U: 2, V: 1}, {U: 1, V: 0}}, renamed.Edges())

	identity, err := builder.Relabel(p, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, p.Edges(), identity.Edges())

	_, err = builder.Relabel(p, []int{0, 1})
	assert.ErrorIs(t, err, builder.ErrBadPermutation)
	_, err = builder.Relabel(p, []int{0, 1, 2, 2})
	assert.ErrorIs(t, err, builder.ErrBadPermutation)
	_, err = builder.Relabel(p, []int{0, 1, 2, 9})
	assert.ErrorIs(t, err, builder.ErrBadPermutation)
	_, err = builder.Relabel(nil, nil)
	assert.ErrorIs(t, err, builder.ErrNotATree)
}

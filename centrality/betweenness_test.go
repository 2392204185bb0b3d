package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/centra/builder"
	"github.com/katalvlaran/centra/centrality"
	"github.com/katalvlaran/centra/core"
)

// BetweennessSuite exercises Brandes accumulation across canonical
// topologies, option branches and sampling.
type BetweennessSuite struct {
	suite.Suite
}

// TestValidation verifies rejection of invalid inputs and options.
func (s *BetweennessSuite) TestValidation() {
	_, err := centrality.Betweenness(nil)
	require.ErrorIs(s.T(), err, centrality.ErrGraphNil)

	g := core.NewGraph(3)
	_, err = centrality.Betweenness(g, centrality.WithSample(-1))
	require.ErrorIs(s.T(), err, centrality.ErrBadSampleSize)
	_, err = centrality.Betweenness(g, centrality.WithSample(4))
	require.ErrorIs(s.T(), err, centrality.ErrBadSampleSize)
	_, err = centrality.Betweenness(g, centrality.WithVertexSubset([]int{0, 3}))
	require.ErrorIs(s.T(), err, centrality.ErrVertexOutOfRange)
	_, err = centrality.Betweenness(g, centrality.WithWorkers(0))
	require.ErrorIs(s.T(), err, centrality.ErrBadWorkers)
}

// TestStar3: the hub of a 3-star carries the single transit path.
func (s *BetweennessSuite) TestStar3() {
	g, err := builder.BuildGraph(3, nil, nil, builder.Star())
	require.NoError(s.T(), err)

	bc, err := centrality.Betweenness(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 0, 0}, bc)
}

// TestPath4: the two interior vertices of a 4-path each sit on 2 of the
// 3 ordered pair families per direction; normalized score 2/3.
func (s *BetweennessSuite) TestPath4() {
	g, err := builder.BuildGraph(4, nil, nil, builder.Path())
	require.NoError(s.T(), err)

	bc, err := centrality.Betweenness(g)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{0, 2.0 / 3.0, 2.0 / 3.0, 0}, bc, 1e-12)

	// Raw undirected scores are halved, not normalized.
	raw, err := centrality.Betweenness(g, centrality.WithNormalize(false))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{0, 2, 2, 0}, raw, 1e-12)
}

// TestIdempotent: two unsampled runs yield identical vectors.
func (s *BetweennessSuite) TestIdempotent() {
	g, err := builder.BuildGraph(24, nil, nil, builder.RandomSparse(0.2))
	require.NoError(s.T(), err)

	first, err := centrality.Betweenness(g)
	require.NoError(s.T(), err)
	second, err := centrality.Betweenness(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestEndpoints: path 0-1-2 with endpoint credit.
// Per source: the source scores the number of vertices it reaches, and
// every other reached vertex scores dependency+1. Raw undirected scores
// halve to [2, 3, 2].
func (s *BetweennessSuite) TestEndpoints() {
	g, err := builder.BuildGraph(3, nil, nil, builder.Path())
	require.NoError(s.T(), err)

	bc, err := centrality.Betweenness(g, centrality.WithEndpoints(), centrality.WithNormalize(false))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{2, 3, 2}, bc, 1e-12)
}

// TestSmallGraphNoNormalization: n ≤ 2 skips the normalization factor.
func (s *BetweennessSuite) TestSmallGraphNoNormalization() {
	g, err := builder.BuildGraph(2, nil, nil, builder.Path())
	require.NoError(s.T(), err)

	bc, err := centrality.Betweenness(g, centrality.WithEndpoints())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{2, 2}, bc, "endpoint credits survive unscaled when n <= 2")
}

// TestDirectedRawUnscaled: directed raw scores are not halved.
func (s *BetweennessSuite) TestDirectedRawUnscaled() {
	g := core.NewGraph(3, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1))
	require.NoError(s.T(), g.AddEdge(1, 2))

	bc, err := centrality.Betweenness(g, centrality.WithNormalize(false))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0, 1, 0}, bc, "single transit path 0→1→2")
}

// TestVertexSubset: only the requested sources accumulate.
func (s *BetweennessSuite) TestVertexSubset() {
	g, err := builder.BuildGraph(4, nil, nil, builder.Path())
	require.NoError(s.T(), err)

	bc, err := centrality.Betweenness(g,
		centrality.WithVertexSubset([]int{0}),
		centrality.WithNormalize(false),
	)
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{0, 1, 0.5, 0}, bc, 1e-12)
}

// TestSampleAllEqualsFull: sampling every vertex (k = n) reproduces the
// exhaustive result, since the n/k extrapolation factor is 1.
func (s *BetweennessSuite) TestSampleAllEqualsFull() {
	g, err := builder.BuildGraph(12, nil, nil, builder.Cycle())
	require.NoError(s.T(), err)

	full, err := centrality.Betweenness(g)
	require.NoError(s.T(), err)
	sampled, err := centrality.Betweenness(g, centrality.WithSample(12), centrality.WithSeed(7))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), full, sampled, 1e-12)
}

// TestSampleDeterministic: a fixed seed draws the same sources.
func (s *BetweennessSuite) TestSampleDeterministic() {
	g, err := builder.BuildGraph(30, nil, nil, builder.RandomSparse(0.15))
	require.NoError(s.T(), err)

	a, err := centrality.Betweenness(g, centrality.WithSample(5), centrality.WithSeed(99))
	require.NoError(s.T(), err)
	b, err := centrality.Betweenness(g, centrality.WithSample(5), centrality.WithSeed(99))
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

// TestWorkersMatchSequential: parallel fan-out agrees with the
// sequential accumulation.
func (s *BetweennessSuite) TestWorkersMatchSequential() {
	g, err := builder.BuildGraph(40, nil, nil, builder.RandomSparse(0.1))
	require.NoError(s.T(), err)

	seq, err := centrality.Betweenness(g)
	require.NoError(s.T(), err)
	par, err := centrality.Betweenness(g, centrality.WithWorkers(4))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), seq, par, 1e-9)
}

// TestWeighted: weights reroute shortest paths and move the transit
// vertex. Square 0-1-3 / 0-2-3 where the 0-2-3 side is cheap.
func (s *BetweennessSuite) TestWeighted() {
	g := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {1, 3}, {0, 2}, {2, 3}} {
		require.NoError(s.T(), g.AddEdge(e[0], e[1]))
	}
	m := core.NewDense(4)
	for _, e := range [][3]float64{{0, 1, 5}, {1, 3, 5}, {0, 2, 1}, {2, 3, 1}} {
		require.NoError(s.T(), m.Set(int(e[0]), int(e[1]), e[2]))
		require.NoError(s.T(), m.Set(int(e[1]), int(e[0]), e[2]))
	}

	// Vertex 2 carries all 0↔3 traffic; 1↔2 traffic splits evenly over
	// the tied routes through 0 and through 3.
	bc, err := centrality.Betweenness(g, centrality.WithWeights(m), centrality.WithNormalize(false))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{0.5, 0, 1, 0.5}, bc, 1e-12)
}

// TestIsolatedVertices: zero-degree sources are skipped and stay zero.
func (s *BetweennessSuite) TestIsolatedVertices() {
	g := core.NewGraph(5)
	require.NoError(s.T(), g.AddEdge(0, 1))
	require.NoError(s.T(), g.AddEdge(1, 2))
	// 3 and 4 are isolated.

	bc, err := centrality.Betweenness(g, centrality.WithNormalize(false))
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{0, 1, 0, 0, 0}, bc, 1e-12)
}

// TestEmptyGraph: zero vertices yields an empty vector.
func (s *BetweennessSuite) TestEmptyGraph() {
	bc, err := centrality.Betweenness(core.NewGraph(0))
	require.NoError(s.T(), err)
	require.Empty(s.T(), bc)
}

func TestBetweennessSuite(t *testing.T) {
	suite.Run(t, new(BetweennessSuite))
}

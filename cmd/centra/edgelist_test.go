package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEdgeList_Unweighted(t *testing.T) {
	in := "# fixture\n0 1\n1 2\n\n2 3\n"
	el, err := parseEdgeList(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Equal(t, 4, el.graph.Order())
	require.Nil(t, el.weights)
	require.True(t, el.graph.HasEdge(1, 0))
	require.True(t, el.graph.HasEdge(2, 3))
}

func TestParseEdgeList_Weighted(t *testing.T) {
	in := "0 1 2.5\n1 2\n"
	el, err := parseEdgeList(strings.NewReader(in), false)
	require.NoError(t, err)
	require.NotNil(t, el.weights)
	require.Equal(t, 2.5, el.weights.Weight(0, 1))
	require.Equal(t, 2.5, el.weights.Weight(1, 0))
	// Unweighted lines default to 1 in a weighted file.
	require.Equal(t, 1.0, el.weights.Weight(1, 2))
}

func TestParseEdgeList_Directed(t *testing.T) {
	in := "0 1 3\n"
	el, err := parseEdgeList(strings.NewReader(in), true)
	require.NoError(t, err)
	require.True(t, el.graph.HasEdge(0, 1))
	require.False(t, el.graph.HasEdge(1, 0))
	require.Equal(t, 3.0, el.weights.Weight(0, 1))
	require.NotEqual(t, 3.0, el.weights.Weight(1, 0))
}

func TestParseEdgeList_Malformed(t *testing.T) {
	cases := []string{
		"0\n",
		"0 1 2 3\n",
		"a 1\n",
		"0 b\n",
		"-1 2\n",
		"0 1 zzz\n",
	}
	for _, in := range cases {
		_, err := parseEdgeList(strings.NewReader(in), false)
		require.Error(t, err, "input %q", in)
	}
}

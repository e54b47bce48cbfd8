package traverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/traverse"
)

// adj is a directed test graph; edge labels are the position in the adjacency list.
type adj map[string][]string

func (a adj) OutEdges(n string) []traverse.Edge[string, int] {
	out := make([]traverse.Edge[string, int], 0, len(a[n]))
	for i, to := range a[n] {
		out = append(out, traverse.Edge[string, int]{From: n, Label: i, To: to})
	}

	return out
}

// diamond: A→B, A→C, B→D, C→D, D→E
func diamond() adj {
	return adj{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E"},
	}
}

func TestBFS_Errors(t *testing.T) {
	_, err := traverse.BFS[string, int](nil, "A", traverse.Visitor[string, int]{})
	assert.ErrorIs(t, err, traverse.ErrGraphNil)

	_, err = traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{}, traverse.WithMaxDepth(-1))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

func TestBFS_OrderDepthAndPath(t *testing.T) {
	res, err := traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 3, res.Depth["E"])

	path, err := res.PathTo("E")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, "B", path[0].To, "D is discovered through the first branch")

	labels, err := res.LabelsTo("D")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, labels)

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, traverse.ErrNotReached)

	startPath, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Empty(t, startPath)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{}, traverse.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_IgnoreAndAbort(t *testing.T) {
	// Ignoring B's expansion still reaches D through C.
	res, err := traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{
		OnVisit: func(n string, _ int) traverse.Action {
			if n == "B" {
				return traverse.Ignore
			}

			return traverse.Explore
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, "C", res.Parent["D"].From)

	// Ignoring the D→E edge cuts E off.
	res, err = traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{
		OnEdge: func(e traverse.Edge[string, int], _ int) traverse.Action {
			if e.To == "E" {
				return traverse.Ignore
			}

			return traverse.Explore
		},
	})
	require.NoError(t, err)
	assert.False(t, res.Reached("E"))

	// Abort on C.
	res, err = traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{
		OnVisit: func(n string, _ int) traverse.Action {
			if n == "C" {
				return traverse.Abort
			}

			return traverse.Explore
		},
	})
	require.NoError(t, err)
	assert.True(t, res.Aborted)
	assert.Equal(t, "C", res.Last)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := traverse.BFS[string, int](diamond(), "A", traverse.Visitor[string, int]{}, traverse.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_PrePostOrder(t *testing.T) {
	var exits []string
	res, err := traverse.DFS[string, int](diamond(), "A", traverse.Visitor[string, int]{
		OnExit: func(n string, _ int) { exits = append(exits, n) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.PreOrder)
	assert.Equal(t, []string{"E", "D", "B", "C", "A"}, res.Order)
	assert.Equal(t, res.Order, exits)
}

func TestDFS_BackEdges(t *testing.T) {
	g := adj{"A": {"B"}, "B": {"C"}, "C": {"A", "D"}}
	var back []traverse.Edge[string, int]
	res, err := traverse.DFS[string, int](g, "A", traverse.Visitor[string, int]{
		OnBackEdge: func(e traverse.Edge[string, int]) { back = append(back, e) },
	})
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "C", back[0].From)
	assert.Equal(t, "A", back[0].To)
	assert.True(t, res.Reached("D"))

	// A diamond has a cross edge into a finished node but no back edge.
	back = nil
	_, err = traverse.DFS[string, int](diamond(), "A", traverse.Visitor[string, int]{
		OnBackEdge: func(e traverse.Edge[string, int]) { back = append(back, e) },
	})
	require.NoError(t, err)
	assert.Empty(t, back)
}

func TestDFS_MaxDepthAndAbort(t *testing.T) {
	res, err := traverse.DFS[string, int](diamond(), "A", traverse.Visitor[string, int]{}, traverse.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.PreOrder)

	res, err = traverse.DFS[string, int](diamond(), "A", traverse.Visitor[string, int]{
		OnEdge: func(e traverse.Edge[string, int], _ int) traverse.Action {
			if e.To == "E" {
				return traverse.Abort
			}

			return traverse.Explore
		},
	})
	require.NoError(t, err)
	assert.True(t, res.Aborted)
	assert.Equal(t, "D", res.Last)
	assert.NotContains(t, res.PreOrder, "C")
}

func TestGraphFunc(t *testing.T) {
	// Infinite counter graph bounded by MaxDepth.
	g := traverse.GraphFunc[int, string](func(n int) []traverse.Edge[int, string] {
		return []traverse.Edge[int, string]{{From: n, Label: "inc", To: n + 1}}
	})
	res, err := traverse.BFS[int, string](g, 0, traverse.Visitor[int, string]{}, traverse.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, "abort", traverse.Abort.String())
}

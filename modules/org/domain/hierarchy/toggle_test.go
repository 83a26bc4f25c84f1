package hierarchy_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
)

func ceoForest() hierarchy.Forest {
	return hierarchy.Forest{
		{ID: "1", Title: "CEO", Children: hierarchy.Forest{
			{ID: "2", Title: "CTO", Children: hierarchy.Forest{}},
		}},
	}
}

// nestedForest is three levels deep with two level-2 siblings under each level-1 node.
func nestedForest() hierarchy.Forest {
	return hierarchy.Forest{
		{ID: "board", Title: "Board", Expanded: true, Children: hierarchy.Forest{
			{ID: "ops", Title: "Operations", Expanded: true, Children: hierarchy.Forest{
				{ID: "field", Title: "Field Teams", Children: hierarchy.Forest{
					{ID: "north", Title: "North"},
				}},
				{ID: "logistics", Title: "Logistics", Children: hierarchy.Forest{
					{ID: "fleet", Title: "Fleet"},
				}},
			}},
			{ID: "programs", Title: "Programs", Children: hierarchy.Forest{
				{ID: "health", Title: "Healthcare"},
				{ID: "edu", Title: "Education", Expanded: true, Children: hierarchy.Forest{
					{ID: "schools", Title: "Schools"},
				}},
			}},
		}},
		{ID: "advisors", Title: "Advisors"},
	}
}

func expandedStates(f hierarchy.Forest) map[hierarchy.NodeID]bool {
	states := map[hierarchy.NodeID]bool{}
	hierarchy.Walk(f, func(n hierarchy.Node, _ int, _ *hierarchy.Node) bool {
		states[n.ID] = n.Expanded
		return true
	})
	return states
}

type edge struct {
	parent, child hierarchy.NodeID
	position      int
}

func edges(f hierarchy.Forest) []edge {
	var out []edge
	for i, n := range f {
		out = append(out, edge{parent: "", child: n.ID, position: i})
	}
	hierarchy.Walk(f, func(n hierarchy.Node, _ int, _ *hierarchy.Node) bool {
		for i, c := range n.Children {
			out = append(out, edge{parent: n.ID, child: c.ID, position: i})
		}
		return true
	})
	return out
}

func TestToggle_ScenarioA(t *testing.T) {
	t.Parallel()

	got, ok := hierarchy.Toggle(ceoForest(), "1")
	require.True(t, ok)

	want := hierarchy.Forest{
		{ID: "1", Title: "CEO", Expanded: true, Children: hierarchy.Forest{
			{ID: "2", Title: "CTO", Expanded: false, Children: hierarchy.Forest{}},
		}},
	}
	assert.Equal(t, want, got)
}

func TestToggle_ScenarioB_MissingIDIsNoop(t *testing.T) {
	t.Parallel()

	f := ceoForest()
	got, ok := hierarchy.Toggle(f, "99")
	assert.False(t, ok)
	assert.Equal(t, ceoForest(), got)
	require.NotEmpty(t, got)
	assert.Same(t, &f[0], &got[0], "a miss returns the original forest")
}

func TestToggle_ScenarioC_Level2OnlyTouchesTarget(t *testing.T) {
	t.Parallel()

	f := nestedForest()
	before := expandedStates(f)

	got, ok := hierarchy.Toggle(f, "field")
	require.True(t, ok)

	after := expandedStates(got)
	for id, expanded := range before {
		if id == "field" {
			assert.Equal(t, !expanded, after[id])
			continue
		}
		assert.Equal(t, expanded, after[id], "node %s changed", id)
	}
	field, ok := hierarchy.Find(got, "field")
	require.True(t, ok)
	assert.True(t, field.Expanded)
	logistics, _ := hierarchy.Find(got, "logistics")
	assert.False(t, logistics.Expanded)
}

func TestToggle_FlipsExactlyOneFlag(t *testing.T) {
	t.Parallel()

	f := nestedForest()
	for _, id := range hierarchy.IDs(f) {
		t.Run(string(id), func(t *testing.T) {
			before := expandedStates(f)
			got, ok := hierarchy.Toggle(f, id)
			require.True(t, ok)

			after := expandedStates(got)
			changed := 0
			for k := range before {
				if before[k] != after[k] {
					changed++
					assert.Equal(t, id, k)
				}
			}
			assert.Equal(t, 1, changed)
		})
	}
}

func TestToggle_DoubleToggleRestores(t *testing.T) {
	t.Parallel()

	f := nestedForest()
	for _, id := range hierarchy.IDs(f) {
		once, ok := hierarchy.Toggle(f, id)
		require.True(t, ok)
		twice, ok := hierarchy.Toggle(once, id)
		require.True(t, ok)
		assert.Equal(t, f, twice, "double toggle of %s", id)
	}
}

func TestToggle_PreservesStructure(t *testing.T) {
	t.Parallel()

	f := nestedForest()
	wantIDs := hierarchy.IDs(f)
	sort.Slice(wantIDs, func(i, j int) bool { return wantIDs[i] < wantIDs[j] })

	for _, id := range append(hierarchy.IDs(f), "missing") {
		got, _ := hierarchy.Toggle(f, id)
		gotIDs := hierarchy.IDs(got)
		sort.Slice(gotIDs, func(i, j int) bool { return gotIDs[i] < gotIDs[j] })
		assert.Equal(t, wantIDs, gotIDs)
		assert.Equal(t, edges(f), edges(got))

		hierarchy.Walk(got, func(n hierarchy.Node, _ int, _ *hierarchy.Node) bool {
			orig, ok := hierarchy.Find(f, n.ID)
			require.True(t, ok)
			assert.Equal(t, orig.Title, n.Title)
			return true
		})
	}
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	f := nestedForest()
	snapshot := hierarchy.Clone(f)
	_, ok := hierarchy.Toggle(f, "schools")
	require.True(t, ok)
	assert.Equal(t, snapshot, f)
}

func TestToggle_SharesUntouchedSubtrees(t *testing.T) {
	t.Parallel()

	f := nestedForest()
	got, ok := hierarchy.Toggle(f, "field")
	require.True(t, ok)

	// "programs" is off the board→ops→field path, so its children slice is reused.
	require.Len(t, got[0].Children, 2)
	assert.Same(t, &f[0].Children[1].Children[0], &got[0].Children[1].Children[0])
	// The second root is untouched but lives in a copied root slice.
	assert.Equal(t, f[1], got[1])
}

func TestToggle_EmptyForest(t *testing.T) {
	t.Parallel()

	got, ok := hierarchy.Toggle(nil, "1")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestToggle_WideForest(t *testing.T) {
	t.Parallel()

	f := make(hierarchy.Forest, 0, 50)
	for i := 0; i < 50; i++ {
		f = append(f, hierarchy.Node{ID: hierarchy.NodeID(fmt.Sprint(i)), Title: fmt.Sprintf("Node %d", i)})
	}
	got, ok := hierarchy.Toggle(f, "49")
	require.True(t, ok)
	assert.True(t, got[49].Expanded)
	assert.Equal(t, 1, countExpanded(got))
}

func countExpanded(f hierarchy.Forest) int {
	total := 0
	hierarchy.Walk(f, func(n hierarchy.Node, _ int, _ *hierarchy.Node) bool {
		if n.Expanded {
			total++
		}
		return true
	})
	return total
}

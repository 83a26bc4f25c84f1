package mappers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
)

func TestLevelClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level int
		want  []string
		not   string
	}{
		{level: 0, want: []string{"from-primary", "to-secondary", "shadow-lg"}, not: "border"},
		{level: 1, want: []string{"from-secondary", "to-primary"}},
		{level: 2, want: []string{"border-2", "border-primary"}},
		{level: 3, want: []string{"bg-gray-50"}},
		{level: 7, want: []string{"bg-gray-50"}},
		{level: -1, want: []string{"from-primary", "to-secondary"}},
	}
	for _, tc := range cases {
		got := LevelClass(tc.level)
		tokens := strings.Fields(got)
		for _, cls := range append(tc.want, "rounded-lg", "px-6") {
			assert.Contains(t, tokens, cls, "level %d", tc.level)
		}
		if tc.not != "" {
			assert.NotContains(t, tokens, tc.not, "level %d", tc.level)
		}
		assert.Equal(t, got, LevelClass(tc.level), "level %d renders the same classes every call", tc.level)
	}
}

func TestSpacerOffsets(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SpacerOffsets(0))
	assert.Nil(t, SpacerOffsets(1))
	assert.InDeltaSlice(t, []float64{100.0 / 3, 200.0 / 3}, SpacerOffsets(2), 1e-9)
	assert.InDeltaSlice(t, []float64{25, 50, 75}, SpacerOffsets(3), 1e-9)
}

func TestForestToChart(t *testing.T) {
	t.Parallel()

	viewID := uuid.MustParse("6f1c1d56-3f0e-4c1e-9d7e-1a2b3c4d5e6f")
	forest := hierarchy.Forest{
		{ID: "1", Title: "CEO", Expanded: true, Children: hierarchy.Forest{
			{ID: "2", Title: "CTO", Children: hierarchy.Forest{{ID: "4", Title: "Engineer"}}},
			{ID: "3", Title: "CFO", Expanded: true},
		}},
	}

	chart := ForestToChart(viewID, forest)
	assert.Equal(t, viewID.String(), chart.ViewID)
	assert.Equal(t, 4, chart.TotalNodes)
	assert.Equal(t, 3, chart.VisibleNodes)

	require.Len(t, chart.Roots, 1)
	root := chart.Roots[0]
	assert.Equal(t, 0, root.Level)
	assert.True(t, root.Expandable)
	assert.True(t, root.Expanded)
	assert.Equal(t, "/organization/views/"+viewID.String()+"/nodes/1/toggle", root.ToggleURL)
	assert.Len(t, root.Spacers, 2)
	require.Len(t, root.Children, 2)

	cto := root.Children[0]
	assert.Equal(t, 1, cto.Level)
	assert.True(t, cto.Expandable)
	assert.False(t, cto.Expanded)
	assert.Empty(t, cto.Children, "collapsed nodes hide their children")

	cfo := root.Children[1]
	assert.False(t, cfo.Expandable)
	assert.False(t, cfo.Expanded, "a leaf is never shown as expanded")
	assert.Empty(t, cfo.ToggleURL)
}

func TestToggleURL_EscapesIDs(t *testing.T) {
	t.Parallel()

	got := ToggleURL(uuid.Nil, "a/b c")
	assert.Equal(t, "/organization/views/00000000-0000-0000-0000-000000000000/nodes/a%2Fb%20c/toggle", got)
}

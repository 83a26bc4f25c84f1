package mappers

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/presentation/viewmodels"
)

const MaxStyledLevel = 3

const nodeBaseClass = "px-6 py-4 rounded-lg font-medium text-center min-w-[200px] transition-all duration-200 transform hover:scale-105"

var levelClasses = [...]string{
	"bg-gradient-to-r from-primary to-secondary text-white shadow-lg",
	"bg-gradient-to-r from-secondary to-primary text-white shadow-md",
	"bg-white border-2 border-primary text-primary shadow-sm",
	"bg-gray-50 border border-gray-300 text-gray-700",
}

// LevelClass returns the card classes for a nesting level; levels past the
// last style reuse it.
func LevelClass(level int) string {
	if level < 0 {
		level = 0
	}
	if level > MaxStyledLevel {
		level = MaxStyledLevel
	}
	return nodeBaseClass + " " + levelClasses[level]
}

func ToggleURL(viewID uuid.UUID, id hierarchy.NodeID) string {
	return fmt.Sprintf("/organization/views/%s/nodes/%s/toggle", viewID.String(), url.PathEscape(id.String()))
}

// SpacerOffsets spreads n drop lines evenly across the connector bar.
func SpacerOffsets(n int) []float64 {
	if n < 2 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) / float64(n+1) * 100
	}
	return out
}

func ForestToChart(viewID uuid.UUID, f hierarchy.Forest) *viewmodels.OrgChart {
	chart := &viewmodels.OrgChart{
		ViewID:     viewID.String(),
		TotalNodes: hierarchy.Count(f),
		Roots:      make([]viewmodels.OrgChartNode, 0, len(f)),
	}
	for _, n := range f {
		chart.Roots = append(chart.Roots, nodeToViewModel(viewID, n, 0, &chart.VisibleNodes))
	}
	return chart
}

func nodeToViewModel(viewID uuid.UUID, n hierarchy.Node, level int, visible *int) viewmodels.OrgChartNode {
	*visible++
	vm := viewmodels.OrgChartNode{
		ID:         n.ID.String(),
		Title:      n.Title,
		Level:      level,
		Expandable: n.HasChildren(),
		Class:      LevelClass(level),
	}
	if !vm.Expandable {
		return vm
	}
	vm.Expanded = n.Expanded
	vm.ToggleURL = ToggleURL(viewID, n.ID)
	if !n.Expanded {
		return vm
	}
	vm.Spacers = SpacerOffsets(len(n.Children))
	vm.Children = make([]viewmodels.OrgChartNode, 0, len(n.Children))
	for _, c := range n.Children {
		vm.Children = append(vm.Children, nodeToViewModel(viewID, c, level+1, visible))
	}
	return vm
}

func ViewToResponse(v hierarchy.View) *viewmodels.OrgChartViewResponse {
	chart := ForestToChart(v.ID, v.Forest)
	return &viewmodels.OrgChartViewResponse{
		ID:           v.ID.String(),
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
		TotalNodes:   chart.TotalNodes,
		VisibleNodes: chart.VisibleNodes,
		Nodes:        forestToResponse(v.Forest),
	}
}

func forestToResponse(f hierarchy.Forest) []viewmodels.OrgChartNodeResponse {
	out := make([]viewmodels.OrgChartNodeResponse, 0, len(f))
	for _, n := range f {
		out = append(out, viewmodels.OrgChartNodeResponse{
			ID:       n.ID.String(),
			Title:    n.Title,
			Expanded: n.Expanded,
			Children: forestToResponse(n.Children),
		})
	}
	return out
}

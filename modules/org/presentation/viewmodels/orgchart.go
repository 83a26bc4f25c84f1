package viewmodels

type OrgChartNode struct {
	ID         string
	Title      string
	Level      int
	Expanded   bool
	Expandable bool
	ToggleURL  string
	Class      string
	// Spacers holds the horizontal offsets (in percent) of the drop lines
	// above each child; empty unless the node is expanded with 2+ children.
	Spacers  []float64
	Children []OrgChartNode
}

type OrgChart struct {
	ViewID       string
	Roots        []OrgChartNode
	TotalNodes   int
	VisibleNodes int
}

// OrgChartViewResponse is the JSON shape of a stored view.
type OrgChartViewResponse struct {
	ID           string                 `json:"id"`
	CreatedAt    string                 `json:"createdAt"`
	TotalNodes   int                    `json:"totalNodes"`
	VisibleNodes int                    `json:"visibleNodes"`
	Nodes        []OrgChartNodeResponse `json:"nodes"`
}

type OrgChartNodeResponse struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Expanded bool                   `json:"expanded"`
	Children []OrgChartNodeResponse `json:"children,omitempty"`
}

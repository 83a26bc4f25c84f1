package models

type OrgChartNode struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Expanded bool           `json:"expanded"`
	Children []OrgChartNode `json:"children"`
}

type OrgChartView struct {
	ID        string         `json:"id"`
	Nodes     []OrgChartNode `json:"nodes"`
	CreatedAt int64          `json:"created_at"`
}

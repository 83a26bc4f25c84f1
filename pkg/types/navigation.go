package types

type NavigationItem struct {
	Name     string
	Href     string
	Children []NavigationItem
	Icon     string
}

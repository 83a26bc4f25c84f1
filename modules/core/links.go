package core

import (
	"github.com/apper-apps/india-website-drive/pkg/types"
)

var HomeLink = types.NavigationItem{
	Name: "NavigationLinks.Home",
	Href: "/",
}

var NavItems = []types.NavigationItem{
	HomeLink,
}

package website

import (
	"github.com/apper-apps/india-website-drive/pkg/types"
)

var AboutLink = types.NavigationItem{
	Name: "NavigationLinks.About",
	Href: "/about",
}

var BlogLink = types.NavigationItem{
	Name: "NavigationLinks.Blog",
	Href: "/blog",
}

var ContactLink = types.NavigationItem{
	Name: "NavigationLinks.Contact",
	Href: "/contact",
}

var NavItems = []types.NavigationItem{
	AboutLink,
	BlogLink,
	ContactLink,
}

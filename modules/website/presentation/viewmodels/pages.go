package viewmodels

import (
	"github.com/a-h/templ"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
)

type Slide struct {
	Index    int
	Image    string
	Title    string
	Subtitle string
	CTAText  string
	CTALink  string
	Active   bool
	URL      string
}

type HeroSlider struct {
	Slides      []Slide
	Current     int
	PrevURL     string
	NextURL     string
	HasControls bool
	IntervalMs  int64
}

type Gallery struct {
	TitleKey string
	Photos   []content.Photo
}

type HomePage struct {
	Slider     HeroSlider
	Stats      []content.Stat
	FocusAreas []content.Value
	Gallery    Gallery
}

type AboutPage struct {
	Values     []content.Value
	Approaches []content.Value
	Gallery    Gallery
	OrgChart   templ.Component
}

type BlogPost struct {
	ID            int
	Title         string
	Excerpt       string
	Image         string
	Author        string
	Initials      string
	DateISO       string
	DateLabel     string
	Category      string
	CategoryClass string
	CategoryIcon  string
	ReadTime      string
}

type PageLink struct {
	Number  int
	URL     string
	Current bool
}

type CategoryLink struct {
	Name    string
	URL     string
	Current bool
}

type BlogPage struct {
	Posts      []BlogPost
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	Pages      []PageLink
	Query      string
	Category   string
	Categories []CategoryLink
	AllURL     string
}

type ContactForm struct {
	Action  string
	Name    string
	Email   string
	Subject string
	Message string
	Errors  map[string]string
}

func (f ContactForm) Error(field string) string {
	return f.Errors[field]
}

type ContactPage struct {
	Info    content.ContactInfo
	Gallery Gallery
	Form    ContactForm
	Sent    bool
}

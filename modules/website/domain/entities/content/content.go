package content

import (
	"context"
	"errors"
	"time"
)

var ErrContentUnavailable = errors.New("content unavailable")

// DefaultCTAText labels a slide button when the slide sets none.
const DefaultCTAText = "Learn More"

type Slide struct {
	ID       int
	Image    string
	Title    string
	Subtitle string
	CTAText  string
	CTALink  string
}

type Photo struct {
	ID          int
	Image       string
	Title       string
	Description string
}

type Stat struct {
	ID          int
	Icon        string
	Value       string
	Label       string
	Description string
}

// Value is a core value or approach card: an icon, a title and a blurb.
type Value struct {
	ID          int
	Icon        string
	Title       string
	Description string
}

type ContactInfo struct {
	Organization string
	Address      []string
	Phones       []string
	Emails       []string
	Hours        []string
	MapURL       string
}

type Post struct {
	ID       int
	Title    string
	Excerpt  string
	Image    string
	Author   string
	Date     time.Time
	Category string
	ReadTime string
}

type Repository interface {
	Slides(ctx context.Context) ([]Slide, error)
	HomePhotos(ctx context.Context) ([]Photo, error)
	Stats(ctx context.Context) ([]Stat, error)
	FocusAreas(ctx context.Context) ([]Value, error)
	AboutPhotos(ctx context.Context) ([]Photo, error)
	Values(ctx context.Context) ([]Value, error)
	Approaches(ctx context.Context) ([]Value, error)
	ContactPhotos(ctx context.Context) ([]Photo, error)
	ContactInfo(ctx context.Context) (ContactInfo, error)
	Posts(ctx context.Context) ([]Post, error)
}

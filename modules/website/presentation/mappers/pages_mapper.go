package mappers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/slider"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/viewmodels"
	"github.com/apper-apps/india-website-drive/modules/website/services"
)

const (
	SlideQueryParam = "slide"
	blogPath        = "/blog"
)

func slideURL(i int) string {
	return "/?" + SlideQueryParam + "=" + strconv.Itoa(i)
}

// HeroSlider positions the slider at current. Prev and next links wrap so
// the banner can be driven without scripts.
func HeroSlider(slides []content.Slide, current int, interval time.Duration) viewmodels.HeroSlider {
	pos := slider.New(len(slides), current)
	out := viewmodels.HeroSlider{
		Slides:      make([]viewmodels.Slide, 0, len(slides)),
		Current:     pos.Current(),
		HasControls: pos.HasControls(),
		IntervalMs:  interval.Milliseconds(),
	}
	if pos.HasControls() {
		out.PrevURL = slideURL(pos.Prev().Current())
		out.NextURL = slideURL(pos.Next().Current())
	}
	for i, s := range slides {
		out.Slides = append(out.Slides, viewmodels.Slide{
			Index:    i,
			Image:    s.Image,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			CTAText:  s.CTAText,
			CTALink:  s.CTALink,
			Active:   i == pos.Current(),
			URL:      slideURL(i),
		})
	}
	return out
}

func HomePage(home services.HomeContent, current int, interval time.Duration) *viewmodels.HomePage {
	return &viewmodels.HomePage{
		Slider:     HeroSlider(home.Slides, current, interval),
		Stats:      home.Stats,
		FocusAreas: home.FocusAreas,
		Gallery:    viewmodels.Gallery{TitleKey: "Home.Gallery.Title", Photos: home.Photos},
	}
}

var categoryStyles = map[string][2]string{
	"Development":   {"bg-blue-100 text-blue-600", "check-circle"},
	"Healthcare":    {"bg-red-100 text-red-600", "heart"},
	"Education":     {"bg-green-100 text-green-600", "file-text"},
	"Environment":   {"bg-emerald-100 text-emerald-600", "map-pin"},
	"Social Impact": {"bg-purple-100 text-purple-600", "user"},
	"Finance":       {"bg-yellow-100 text-yellow-600", "calendar"},
}

func CategoryStyle(category string) (class, icon string) {
	if s, ok := categoryStyles[category]; ok {
		return s[0], s[1]
	}
	return "bg-gray-100 text-gray-600", "file-text"
}

func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

func BlogPost(p content.Post) viewmodels.BlogPost {
	class, icon := CategoryStyle(p.Category)
	return viewmodels.BlogPost{
		ID:            p.ID,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Image:         p.Image,
		Author:        p.Author,
		Initials:      Initials(p.Author),
		DateISO:       p.Date.Format("2006-01-02"),
		DateLabel:     p.Date.Format("January 2, 2006"),
		Category:      p.Category,
		CategoryClass: class,
		CategoryIcon:  icon,
		ReadTime:      p.ReadTime,
	}
}

// BlogURL keeps the active search and category while paging.
func BlogURL(page int, query, category string) string {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if query != "" {
		q.Set("q", query)
	}
	if category != "" {
		q.Set("category", category)
	}
	if len(q) == 0 {
		return blogPath
	}
	return blogPath + "?" + q.Encode()
}

func BlogPage(p services.BlogPage) *viewmodels.BlogPage {
	out := &viewmodels.BlogPage{
		Posts:      make([]viewmodels.BlogPost, 0, len(p.Posts)),
		Page:       p.Page,
		TotalPages: p.TotalPages,
		Total:      p.Total,
		HasPrev:    p.HasPrev,
		HasNext:    p.HasNext,
		Query:      p.Query,
		Category:   p.Category,
		AllURL:     BlogURL(1, p.Query, ""),
	}
	for _, post := range p.Posts {
		out.Posts = append(out.Posts, BlogPost(post))
	}
	if p.HasPrev {
		out.PrevURL = BlogURL(p.Page-1, p.Query, p.Category)
	}
	if p.HasNext {
		out.NextURL = BlogURL(p.Page+1, p.Query, p.Category)
	}
	for i := 1; i <= p.TotalPages; i++ {
		out.Pages = append(out.Pages, viewmodels.PageLink{
			Number:  i,
			URL:     BlogURL(i, p.Query, p.Category),
			Current: i == p.Page,
		})
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, viewmodels.CategoryLink{
			Name:    c,
			URL:     BlogURL(1, p.Query, c),
			Current: strings.EqualFold(c, p.Category),
		})
	}
	return out
}

func ContactForm(action string, dto services.SubmitMessageDTO, errs map[string]string) viewmodels.ContactForm {
	return viewmodels.ContactForm{
		Action:  action,
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
		Errors:  errs,
	}
}

func ContactPage(c services.ContactContent, form viewmodels.ContactForm, sent bool) *viewmodels.ContactPage {
	return &viewmodels.ContactPage{
		Info:    c.Info,
		Gallery: viewmodels.Gallery{TitleKey: "Contact.Gallery.Title", Photos: c.Photos},
		Form:    form,
		Sent:    sent,
	}
}

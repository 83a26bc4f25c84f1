package types

import (
	"net/url"
	"strings"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContext provides localization and page metadata for template rendering.
type PageContext struct {
	Locale    language.Tag
	URL       *url.URL
	Localizer *i18n.Localizer
	NavItems  []NavigationItem
	// Languages lists the codes the visitor can switch to.
	Languages []string
	prefix    string
}

func (p *PageContext) T(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	messageID := k
	if p.prefix != "" {
		messageID = p.prefix + "." + k
	}

	if len(args) == 0 {
		return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID})
	}
	return p.Localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: args[0]})
}

// TSafe is like T but returns an empty string when the message is missing.
func (p *PageContext) TSafe(k string, args ...map[string]interface{}) string {
	if len(args) > 1 {
		panic("T(): too many arguments")
	}

	messageID := k
	if p.prefix != "" {
		messageID = p.prefix + "." + k
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		cfg.TemplateData = args[0]
	}

	result, err := p.Localizer.Localize(cfg)
	if err != nil {
		return ""
	}

	return result
}

// Namespace returns a copy whose translation keys are prefixed with prefix.
func (p *PageContext) Namespace(prefix string) *PageContext {
	return &PageContext{
		Locale:    p.Locale,
		URL:       p.URL,
		Localizer: p.Localizer,
		NavItems:  p.NavItems,
		Languages: p.Languages,
		prefix:    prefix,
	}
}

// IsActive reports whether href matches the current request path.
func (p *PageContext) IsActive(href string) bool {
	if p.URL == nil {
		return false
	}
	if href == "/" {
		return p.URL.Path == "/"
	}
	return p.URL.Path == href || strings.HasPrefix(p.URL.Path, href+"/")
}

// ToJSLocale converts the page locale to a locale string understood by Intl APIs.
// Unknown locales default to "en-US".
func (p *PageContext) ToJSLocale() string {
	switch p.Locale.String() {
	case "en", "en-US":
		return "en-US"
	case "en-GB":
		return "en-GB"
	case "en-IN":
		return "en-IN"
	case "hi", "hi-IN":
		return "hi-IN"
	default:
		return "en-US"
	}
}

func (p *PageContext) GetLocale() language.Tag {
	return p.Locale
}

func (p *PageContext) GetURL() *url.URL {
	return p.URL
}

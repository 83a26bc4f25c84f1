package middleware

import (
	"net/http"
	"time"

	"github.com/apper-apps/india-website-drive/pkg/intl"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	LangQueryParam = "lang"
	LangCookie     = "lang"
)

// Application interface for accessing app config needed by localizer
type Application interface {
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
}

// languageTagsFromCodes converts language codes to language.Tag slice
func languageTagsFromCodes(codes []string) []language.Tag {
	supported := intl.GetSupportedLanguages(codes)
	tags := make([]language.Tag, len(supported))
	for i, lang := range supported {
		tags[i] = lang.Tag
	}
	return tags
}

func matchSupported(defaultLocale language.Tag, supported []language.Tag, candidates []language.Tag) language.Tag {
	if len(supported) == 0 {
		return defaultLocale
	}
	if len(candidates) == 0 {
		candidates = []language.Tag{defaultLocale}
	}
	matcher := language.NewMatcher(supported)
	_, idx, _ := matcher.Match(candidates...)
	return supported[idx]
}

// explicitLocale returns the language picked through ?lang= or the lang cookie.
func explicitLocale(r *http.Request) (language.Tag, bool) {
	if code := r.URL.Query().Get(LangQueryParam); code != "" {
		if tag, err := language.Parse(code); err == nil {
			return tag, true
		}
	}
	if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
		if tag, err := language.Parse(c.Value); err == nil {
			return tag, true
		}
	}
	return language.Und, false
}

func useLocale(r *http.Request, defaultLocale language.Tag, supported []language.Tag) language.Tag {
	if tag, ok := explicitLocale(r); ok {
		return matchSupported(defaultLocale, supported, []language.Tag{tag})
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return matchSupported(defaultLocale, supported, nil)
	}
	return matchSupported(defaultLocale, supported, tags)
}

func ProvideLocalizer(app Application) mux.MiddlewareFunc {
	bundle := app.Bundle()
	supportedLanguages := languageTagsFromCodes(app.GetSupportedLanguages())
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				locale := useLocale(r, language.English, supportedLanguages)
				if r.URL.Query().Get(LangQueryParam) != "" {
					base, _ := locale.Base()
					http.SetCookie(w, &http.Cookie{
						Name:     LangCookie,
						Value:    base.String(),
						Path:     "/",
						MaxAge:   int((365 * 24 * time.Hour).Seconds()),
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
				ctx := intl.WithLocalizer(
					r.Context(),
					i18n.NewLocalizer(bundle, locale.String()),
				)
				ctx = intl.WithLocale(ctx, locale)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

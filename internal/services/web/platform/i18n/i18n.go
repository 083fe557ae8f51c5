// Package i18n resolves request languages and localizes web copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "clearance_lang"
)

var (
	supported = []language.Tag{language.English, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Normalize(tag))
}

// Normalize coerces tag to the closest supported language.
func Normalize(tag language.Tag) language.Tag {
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseTag parses value and matches it to a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if r.URL != nil {
		if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return Normalize(matchFirst(tags)), false
		}
	}
	return Default(), false
}

func matchFirst(tags []language.Tag) language.Tag {
	tag, _, _ := matcher.Match(tags...)
	return tag
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    Normalize(tag).String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persists an explicit
// choice, and returns its printer with the language string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

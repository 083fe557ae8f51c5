package templates

import (
	"context"
	"fmt"

	webi18n "github.com/louisbranch/clearance/internal/services/web/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer = webi18n.Localizer

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

type localizerContextKey struct{}

// WithLocalizer stores loc for components rendered without an explicit localizer.
func WithLocalizer(ctx context.Context, loc Localizer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localizerContextKey{}, loc)
}

// LocalizerFromContext returns the localizer stored by WithLocalizer, or nil.
func LocalizerFromContext(ctx context.Context) Localizer {
	if ctx == nil {
		return nil
	}
	loc, _ := ctx.Value(localizerContextKey{}).(Localizer)
	return loc
}

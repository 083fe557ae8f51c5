// Package tradelane provides the trade-lane panel embedded in the dashboard.
//
// The wizard's steps live outside this service; the panel only shows or hides
// the wizard slot and offers a control that flips that visibility.
package tradelane

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
)

// Props are the inputs the dashboard hands to the feature.
type Props struct {
	WizardVisible bool
	// ToggleURL requests the panel with its visibility flipped.
	ToggleURL string
}

// Feature renders the trade-lane panel.
type Feature interface {
	Panel(Props) templ.Component
}

// Default is the built-in trade-lane panel.
type Default struct{}

// New returns the default feature.
func New() Feature {
	return Default{}
}

// Panel renders the trade-lane card with the localizer carried by ctx.
func (Default) Panel(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := webtemplates.LocalizerFromContext(ctx)
		return webtemplates.TradeLanePanel(webtemplates.TradeLaneView{
			WizardVisible: props.WizardVisible,
			ToggleURL:     props.ToggleURL,
		}, loc).Render(ctx, w)
	})
}

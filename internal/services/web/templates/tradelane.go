package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// TradeLaneID is the element id swapped by wizard toggles.
const TradeLaneID = "trade-lane"

// TradeLaneView is the trade-lane panel render model.
type TradeLaneView struct {
	WizardVisible bool
	ToggleURL     string
}

// TradeLanePanel renders the trade-lane card and, when visible, the wizard slot.
func TradeLanePanel(view TradeLaneView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		state := routepath.WizardHidden
		toggleKey := "tradelane.show_wizard"
		if view.WizardVisible {
			state = routepath.WizardShown
			toggleKey = "tradelane.hide_wizard"
		}
		m.raw(`<section class="trade-lane"`)
		m.attr("id", TradeLaneID)
		m.attr("data-wizard", state)
		m.raw("><h2>")
		m.text(T(loc, "tradelane.title"))
		m.raw("</h2><p>")
		m.text(T(loc, "tradelane.subtitle"))
		m.raw("</p><a")
		m.href("href", view.ToggleURL)
		m.href("hx-get", view.ToggleURL)
		m.attr("hx-target", "#"+TradeLaneID)
		m.attr("hx-swap", "outerHTML")
		m.attr("hx-push-url", "false")
		m.raw(` class="btn-green" data-wizard-toggle>`)
		m.text(T(loc, toggleKey))
		m.raw("</a>")
		if view.WizardVisible {
			m.raw(`<div id="trade-lane-wizard" class="wizard">`)
			m.text(T(loc, "tradelane.wizard_loading"))
			m.raw("</div>")
		}
		m.raw("</section>")
	})
}

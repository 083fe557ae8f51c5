package templates

import (
	"context"

	"github.com/a-h/templ"
)

// BadgeStatus is the status of a recent document.
type BadgeStatus string

const (
	BadgeOK    BadgeStatus = "ok"
	BadgeError BadgeStatus = "err"
)

func (s BadgeStatus) labelKey() string {
	if s == BadgeOK {
		return "widgets.status_ok"
	}
	return "widgets.status_err"
}

// RecentDocument is one row in the recent documents widget.
type RecentDocument struct {
	Name   string
	Status BadgeStatus
}

// WidgetsView is the dashboard summary widgets render model.
type WidgetsView struct {
	RecentDocuments []RecentDocument
	AskAIPromptKey  string
	AskAIPath       string
}

// Widgets renders the recent documents and Ask AI cards.
func Widgets(view WidgetsView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<div class="widgets" id="dashboard-widgets"><div class="widget" id="recent-documents"><h4>`)
		m.text(T(loc, "widgets.recent_documents"))
		m.raw("</h4><ul>")
		for _, doc := range view.RecentDocuments {
			m.raw("<li")
			m.attr("data-status", string(doc.Status))
			m.raw("><span")
			m.attr("class", "status "+string(doc.Status))
			m.raw(">")
			m.text(T(loc, doc.Status.labelKey()))
			m.raw("</span> ")
			m.text(doc.Name)
			m.raw("</li>")
		}
		m.raw(`</ul></div><div class="widget ai" id="ask-ai"><h4>`)
		m.text(T(loc, "widgets.ask_ai"))
		m.raw("</h4><p>")
		m.text(T(loc, view.AskAIPromptKey))
		m.raw("</p><a")
		m.href("href", view.AskAIPath)
		m.raw(` class="btn-green small">`)
		m.text(T(loc, "widgets.chat_now"))
		m.raw("</a></div></div>")
	})
}

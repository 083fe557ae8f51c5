package dashboard

import (
	"strings"

	"github.com/louisbranch/clearance/internal/platform/icons"
	"github.com/louisbranch/clearance/internal/services/web/platform/session"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
)

// Variant names the layout produced for one render.
type Variant string

const (
	VariantPending         Variant = "pending"
	VariantUnauthenticated Variant = "unauthenticated"
	VariantAuthenticated   Variant = "authenticated"
)

type navEntry struct {
	id       string
	labelKey string
	path     string
	icon     icons.ID
}

var (
	dashboardEntry = navEntry{id: "dashboard", labelKey: "nav.dashboard", path: routepath.Dashboard, icon: icons.Dashboard}
	documentsEntry = navEntry{id: "documents", labelKey: "nav.documents", path: routepath.DashboardDocuments, icon: icons.Documents}
	assistantEntry = navEntry{id: "ai-assistant", labelKey: "nav.ai_assistant", path: routepath.AIAssistant, icon: icons.AIAssistant}

	anonymousNav     = []navEntry{dashboardEntry}
	authenticatedNav = []navEntry{dashboardEntry, documentsEntry, assistantEntry}
)

// recentDocuments is the fixed recent documents list shown in the widgets area.
var recentDocuments = []webtemplates.RecentDocument{
	{Name: "Invoice.pdf", Status: webtemplates.BadgeOK},
	{Name: "Packing.docx", Status: webtemplates.BadgeError},
}

// Layout is the composed shell for one render. Exactly one variant is set.
type Layout struct {
	Variant Variant
	Nav     []webtemplates.NavItem
	// User is set only for the authenticated variant.
	User          session.Session
	WizardVisible bool
	Widgets       webtemplates.WidgetsView
}

// Composer decides the layout variant from session status and owns the
// trade-lane wizard visibility. Composers are independent values.
type Composer struct {
	wizardVisible bool
	// AlwaysActive marks every nav entry active regardless of route.
	AlwaysActive bool
	// Carried is the raw request query whose sibling UI state the wizard
	// toggle URL passes through unchanged.
	Carried string
}

// NewComposer returns a composer with the wizard hidden.
func NewComposer() Composer {
	return Composer{}
}

// ComposerFromState restores a composer from its request-carried wizard value.
func ComposerFromState(value string) Composer {
	return Composer{wizardVisible: strings.EqualFold(strings.TrimSpace(value), routepath.WizardShown)}
}

// WizardVisible reports whether the trade-lane wizard is shown.
func (c Composer) WizardVisible() bool {
	return c.wizardVisible
}

// ToggleWizard flips the wizard visibility.
func (c *Composer) ToggleWizard() {
	c.wizardVisible = !c.wizardVisible
}

// WizardState returns the request-carried wizard value.
func (c Composer) WizardState() string {
	if c.wizardVisible {
		return routepath.WizardShown
	}
	return routepath.WizardHidden
}

// WizardToggleURL returns the URL that renders the trade-lane panel flipped.
func (c Composer) WizardToggleURL() string {
	flipped := c
	flipped.ToggleWizard()
	return routepath.WithState(routepath.DashboardWizard, c.Carried, routepath.WizardQueryKey, flipped.WizardState())
}

// Compose produces the layout for status at currentPath.
func (c Composer) Compose(status session.Status, currentPath string) Layout {
	switch status.State {
	case session.StatePresent:
		return Layout{
			Variant:       VariantAuthenticated,
			Nav:           c.nav(authenticatedNav, currentPath),
			User:          status.Session,
			WizardVisible: c.wizardVisible,
			Widgets: webtemplates.WidgetsView{
				RecentDocuments: append([]webtemplates.RecentDocument(nil), recentDocuments...),
				AskAIPromptKey:  "widgets.ask_ai_prompt",
				AskAIPath:       routepath.AIAssistant,
			},
		}
	case session.StatePending:
		return Layout{Variant: VariantPending}
	default:
		return Layout{
			Variant: VariantUnauthenticated,
			Nav:     c.nav(anonymousNav, currentPath),
		}
	}
}

func (c Composer) nav(entries []navEntry, currentPath string) []webtemplates.NavItem {
	active := activeEntry(entries, currentPath)
	items := make([]webtemplates.NavItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, webtemplates.NavItem{
			ID:       entry.id,
			LabelKey: entry.labelKey,
			Path:     entry.path,
			Icon:     entry.icon,
			Active:   c.AlwaysActive || entry.id == active,
		})
	}
	return items
}

// activeEntry returns the id of the most specific entry matching currentPath.
func activeEntry(entries []navEntry, currentPath string) string {
	current := routepath.Normalize(currentPath)
	best := ""
	bestLen := -1
	for _, entry := range entries {
		path := routepath.Normalize(entry.path)
		matches := current == path
		if !matches && path != routepath.Root {
			matches = strings.HasPrefix(current, path+"/")
		}
		if matches && len(path) > bestLen {
			best = entry.id
			bestLen = len(path)
		}
	}
	return best
}

package tradelane

import (
	"bytes"
	"context"
	"strings"
	"testing"

	webtemplates "github.com/louisbranch/clearance/internal/services/web/templates"
	"golang.org/x/text/message"
)

type prefixLocalizer struct{}

func (prefixLocalizer) Sprintf(key message.Reference, _ ...any) string {
	if text, ok := key.(string); ok {
		return "loc:" + text
	}
	return ""
}

func TestDefaultPanelRendersVisibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		props      Props
		wantState  string
		wantWizard bool
	}{
		{name: "hidden", props: Props{ToggleURL: "/dashboard/wizard?wizard=shown"}, wantState: `data-wizard="hidden"`},
		{name: "shown", props: Props{WizardVisible: true, ToggleURL: "/dashboard/wizard?wizard=hidden"}, wantState: `data-wizard="shown"`, wantWizard: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := New().Panel(tc.props).Render(context.Background(), &buf); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			body := buf.String()
			if !strings.Contains(body, tc.wantState) {
				t.Fatalf("body missing %q: %q", tc.wantState, body)
			}
			if !strings.Contains(body, `hx-get="`+tc.props.ToggleURL+`"`) {
				t.Fatalf("body missing toggle url %q: %q", tc.props.ToggleURL, body)
			}
			if got := strings.Contains(body, "trade-lane-wizard"); got != tc.wantWizard {
				t.Fatalf("wizard slot rendered = %v, want %v", got, tc.wantWizard)
			}
		})
	}
}

func TestDefaultPanelUsesContextLocalizer(t *testing.T) {
	t.Parallel()

	ctx := webtemplates.WithLocalizer(context.Background(), prefixLocalizer{})
	var buf bytes.Buffer
	if err := New().Panel(Props{ToggleURL: "/dashboard/wizard?wizard=shown"}).Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "loc:tradelane.title") {
		t.Fatalf("panel ignored context localizer: %q", buf.String())
	}
}

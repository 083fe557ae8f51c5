// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root               = "/"
	Login              = "/login"
	LoginCallback      = "/login/callback"
	Health             = "/up"
	Metrics            = "/metrics"
	Dashboard          = "/dashboard"
	DashboardPrefix    = "/dashboard/"
	DashboardDocuments = "/dashboard/documents"
	DashboardMenu      = "/dashboard/menu"
	DashboardWizard    = "/dashboard/wizard"
	DashboardLogout    = "/dashboard/logout"
	AIAssistant        = "/ai-assistant"
	StaticPrefix       = "/static/"
)

// Query keys carrying request-scoped UI state.
const (
	MenuQueryKey   = "menu"
	MenuOpen       = "open"
	MenuClosed     = "closed"
	WizardQueryKey = "wizard"
	WizardShown    = "shown"
	WizardHidden   = "hidden"
	TokenQueryKey  = "token"
)

// stateKeys are the query keys that carry UI state between renders.
var stateKeys = []string{MenuQueryKey, WizardQueryKey}

// WithState returns path carrying the UI state found in rawQuery with key set
// to value. An empty value drops key. Keys outside the UI state are not
// carried.
func WithState(path string, rawQuery string, key string, value string) string {
	carried, _ := url.ParseQuery(rawQuery)
	query := url.Values{}
	for _, stateKey := range stateKeys {
		if current := strings.TrimSpace(carried.Get(stateKey)); current != "" {
			query.Set(stateKey, current)
		}
	}
	if key = strings.TrimSpace(key); key != "" {
		query.Del(key)
		if value = strings.TrimSpace(value); value != "" {
			query.Set(key, value)
		}
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// Normalize trims a trailing slash from non-root paths.
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Package navigation wraps the "go to path" capability used by web views.
package navigation

import (
	"net/http"
	"strings"

	"github.com/louisbranch/clearance/internal/services/web/platform/httpx"
	"github.com/louisbranch/clearance/internal/services/web/routepath"
)

// Navigator sends the client to path. Callers do not consume a result.
type Navigator interface {
	Navigate(w http.ResponseWriter, r *http.Request, path string)
}

// Func adapts a function to Navigator.
type Func func(w http.ResponseWriter, r *http.Request, path string)

// Navigate calls f.
func (f Func) Navigate(w http.ResponseWriter, r *http.Request, path string) {
	if f != nil {
		f(w, r, path)
	}
}

// HTTP navigates with redirects: HX-Redirect for HTMX requests, otherwise a
// standard Location redirect.
type HTTP struct{}

// Navigate writes the redirect for path. Empty paths go to the application root.
func (HTTP) Navigate(w http.ResponseWriter, r *http.Request, path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = routepath.Root
	}
	httpx.WriteRedirect(w, r, path)
}

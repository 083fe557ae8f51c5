// Package sessioncookie centralizes web session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/louisbranch/clearance/internal/services/web/platform/requestmeta"
)

// Name is the canonical web session cookie name. It carries either an opaque
// session id or a signed identity token, depending on the session mode.
const Name = "clearance_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the session cookie using the request scheme policy.
func Write(w http.ResponseWriter, r *http.Request, value string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, newCookie(r, strings.TrimSpace(value), policy, 0))
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, newCookie(r, "", policy, -1))
}

func newCookie(r *http.Request, value string, policy requestmeta.SchemePolicy, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

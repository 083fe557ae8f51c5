// Package web serves the customs-clearance dashboard.
//
// It opens the session store, picks a session provider, composes the public
// and dashboard modules, and wraps them with request ids, panic recovery,
// request logging, and metrics.
package web

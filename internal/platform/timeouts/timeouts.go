// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionResolve caps a single session store lookup made while rendering.
const SessionResolve = 2 * time.Second

// Logout caps a session revocation. It is applied to a context detached
// from the request so a closed connection does not abort the revocation.
const Logout = 10 * time.Second

// Package session owns the shared upstream credential: a CSRF token plus a
// logged-in session token, refreshed lazily and reused process-wide.
package session

import "time"

// Credential is one snapshot of the upstream session. The zero value means
// "unauthenticated"; callers proceed without auth headers in that case.
type Credential struct {
	CSRFToken   string
	XToken      string
	RefreshedAt time.Time
}

// Fresh reports whether the snapshot can be reused without re-authenticating.
func (c Credential) Fresh(now time.Time, ttl time.Duration) bool {
	if c.RefreshedAt.IsZero() {
		return false
	}
	return now.Sub(c.RefreshedAt) <= ttl
}

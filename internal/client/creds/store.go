// Package creds persists the opaque session token between runs. It is the
// CLI's stand-in for the browser's localStorage slot: one named value, no
// expiry, surviving until an explicit clear.
package creds

import "context"

// Store is the capability every component issuing authenticated requests is
// handed. A missing token is not an error: GetToken returns the empty string
// and the request layer proceeds without credentials (the server rejects).
type Store interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Package common contains shared constants used across stockctl components.
package common

const (
	// AuthHeaderName carries the session token on authenticated requests.
	AuthHeaderName = "Authorization"

	// AuthScheme is the credential scheme expected by the inventory API
	// ("Authorization: Token <token>").
	AuthScheme = "Token"

	// CSRFHeaderName echoes the anti-forgery cookie back to the server on
	// mutating requests.
	CSRFHeaderName = "X-CSRFToken"

	// CSRFCookieName is the cookie the server rotates the anti-forgery
	// token through.
	CSRFCookieName = "csrftoken"

	// RequestIDHeaderName carries a per-request id for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// TokenSlotName is the fixed credential-store slot the session token
	// is persisted under.
	TokenSlotName = "token"
)

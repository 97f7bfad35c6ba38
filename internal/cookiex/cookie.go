// Package cookiex extracts values from raw Cookie header strings.
package cookiex

import (
	"net/url"
	"strings"
)

// Value returns the value bound to name in a raw Cookie header
// ("k1=v1; k2=v2; ..."). Values are percent-decoded when possible;
// a value that fails to decode is returned as-is. The second return
// is false when the cookie is not present.
func Value(raw, name string) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		k, v, ok := strings.Cut(part, "=")
		if !ok || k != name {
			continue
		}
		if decoded, err := url.PathUnescape(v); err == nil {
			v = decoded
		}
		return v, true
	}
	return "", false
}

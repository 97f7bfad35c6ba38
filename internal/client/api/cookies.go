package api

import (
	"net/http"
	"net/url"

	"stockctl/internal/common"
	"stockctl/internal/cookiex"
)

// CookieReader exposes the ambient anti-forgery token. It is re-read on
// every request; the cookie may rotate between calls and nothing here
// caches it.
type CookieReader interface {
	CSRFToken() (string, bool)
}

// JarCookies reads the token out of an HTTP cookie jar, where the server's
// Set-Cookie responses land.
type JarCookies struct {
	jar http.CookieJar
	url *url.URL
}

func NewJarCookies(jar http.CookieJar, u *url.URL) *JarCookies {
	return &JarCookies{jar: jar, url: u}
}

func (j *JarCookies) CSRFToken() (string, bool) {
	for _, c := range j.jar.Cookies(j.url) {
		if c.Name == common.CSRFCookieName {
			return c.Value, true
		}
	}
	return "", false
}

// HeaderCookies parses the token out of a raw Cookie header supplied by the
// user (curl -b style), for scripted use against servers whose cookies were
// obtained elsewhere.
type HeaderCookies struct {
	raw string
}

func NewHeaderCookies(raw string) *HeaderCookies {
	return &HeaderCookies{raw: raw}
}

func (h *HeaderCookies) CSRFToken() (string, bool) {
	return cookiex.Value(h.raw, common.CSRFCookieName)
}

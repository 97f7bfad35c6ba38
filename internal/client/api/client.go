// Package api issues JSON requests against the inventory server and maps
// responses into model types. It owns the header policy: session token,
// anti-forgery token, content type.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockctl/internal/client/creds"
	"stockctl/internal/common"
	"stockctl/internal/logging"
)

// Client talks to the inventory API rooted at a fixed base URL
// ("<origin>/api"). All operations go through do, which applies the header
// policy:
//
//   - POST/PUT/DELETE carry the CSRF header when a token is readable;
//   - authed requests carry "Authorization: Token <t>" when the credential
//     store holds a token (an absent token is sent as no header at all, the
//     server answers 401 and the flow surfaces it);
//   - a JSON body implies Content-Type: application/json;
//   - every request carries an X-Request-ID for log correlation.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	creds     creds.Store
	cookies   CookieReader
	rawCookie string
	log       logging.Logger
}

// NewClient builds a Client for the given base URL. With rawCookie empty,
// a cookie jar collects server-set cookies and feeds the CSRF header;
// otherwise rawCookie is sent verbatim on every request and the CSRF token
// is parsed out of it.
func NewClient(baseURL string, timeout time.Duration, store creds.Store, rawCookie string, log logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing scheme or host", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   u,
		http:      &http.Client{Jar: jar, Timeout: timeout},
		creds:     store,
		rawCookie: rawCookie,
		log:       log,
	}

	if rawCookie != "" {
		c.cookies = NewHeaderCookies(rawCookie)
	} else {
		c.cookies = NewJarCookies(jar, u)
	}

	return c, nil
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
		return true
	}
	return false
}

// do issues one request and returns the raw response body. A non-2xx status
// is returned as *Error with the body preserved; transport failures wrap
// ErrUnavailable. path is relative to the base URL and must start with "/".
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authed bool) (json.RawMessage, error) {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if isMutating(method) {
		if token, ok := c.cookies.CSRFToken(); ok {
			req.Header.Set(common.CSRFHeaderName, token)
		}
	}

	if c.rawCookie != "" {
		req.Header.Set("Cookie", c.rawCookie)
	}

	if authed {
		token, err := c.creds.GetToken(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: raw}
	}

	return raw, nil
}

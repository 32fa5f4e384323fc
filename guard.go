package busfleet

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

const tokenBytes = 24

// NewToken returns a random URL-safe shared secret
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Guard rejects cross-site and unauthenticated API calls. Origin is checked
// before the token.
type Guard struct {
	Token string
	// AllowedHost replaces the request Host as the expected origin when set
	AllowedHost   string
	RequireOrigin bool
}

var (
	errOriginMissing = &QueryError{Status: http.StatusForbidden, Detail: "Request origin missing."}
	errOriginInvalid = &QueryError{Status: http.StatusForbidden, Detail: "Invalid request origin."}
	errUnauthorized  = &QueryError{Status: http.StatusUnauthorized, Detail: "Unauthorized request."}
)

// Check returns nil when r may proceed
func (g *Guard) Check(r *http.Request) *QueryError {
	if g.RequireOrigin {
		if expected := g.ExpectedHost(r); expected != "" {
			got := headerHostname(r.Header.Get("Origin"))
			if got == "" {
				got = headerHostname(r.Header.Get("Referer"))
			}
			if got == "" {
				return errOriginMissing
			}
			if got != expected {
				return errOriginInvalid
			}
		}
	}
	token := requestToken(r)
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(g.Token)) != 1 {
		return errUnauthorized
	}
	return nil
}

// ExpectedHost is the hostname API calls must originate from
func (g *Guard) ExpectedHost(r *http.Request) string {
	if g.AllowedHost != "" {
		return strings.ToLower(g.AllowedHost)
	}
	return requestHostname(r)
}

func requestToken(r *http.Request) string {
	if t := r.Header.Get("X-CSRF-Token"); t != "" {
		return t
	}
	if t := r.Header.Get("X-API-Token"); t != "" {
		return t
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// headerHostname extracts the lower-cased hostname from an Origin or Referer
// value; bare hosts are treated as https.
func headerHostname(v string) string {
	if v == "" {
		return ""
	}
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.Parse(v)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

func requestHostname(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

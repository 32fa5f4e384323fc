package busfleet

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"
)

func TestHeaderHostname(t *testing.T) {
	tests := map[string]string{
		"":                              "",
		"https://example.com":           "example.com",
		"http://Example.COM:8080/x?y=1": "example.com",
		"example.com":                   "example.com",
		"example.com:8000":              "example.com",
		"null":                          "null",
		"http://[::1]:8000":             "::1",
		"https://":                      "",
	}
	for in, want := range tests {
		if got := headerHostname(in); got != want {
			t.Errorf("headerHostname(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRequestHostname(t *testing.T) {
	tests := map[string]string{
		"example.com":      "example.com",
		"EXAMPLE.com:8000": "example.com",
		"127.0.0.1:8000":   "127.0.0.1",
		"[::1]:8000":       "::1",
	}
	for host, want := range tests {
		r := httptest.NewRequest("GET", "/", nil)
		r.Host = host
		if got := requestHostname(r); got != want {
			t.Errorf("requestHostname(%q) = %q, want %q", host, got, want)
		}
	}
}

func TestRequestToken_Precedence(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "bearer  from-bearer ")
	if got := requestToken(r); got != "from-bearer" {
		t.Errorf("expected bearer token, got %q", got)
	}
	r.Header.Set("X-API-Token", "from-api")
	if got := requestToken(r); got != "from-api" {
		t.Errorf("expected X-API-Token, got %q", got)
	}
	r.Header.Set("X-CSRF-Token", "from-csrf")
	if got := requestToken(r); got != "from-csrf" {
		t.Errorf("expected X-CSRF-Token, got %q", got)
	}

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	if got := requestToken(r); got != "" {
		t.Errorf("basic auth is not a token, got %q", got)
	}
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	b, _ := NewToken()
	if a == b {
		t.Error("tokens should differ")
	}
	raw, err := base64.RawURLEncoding.DecodeString(a)
	if err != nil || len(raw) != tokenBytes {
		t.Errorf("token %q is not %d url-safe bytes: %v", a, tokenBytes, err)
	}
}

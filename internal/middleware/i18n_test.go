package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		country string
		want    string
	}{
		{name: "explicit amharic header", headers: map[string]string{"X-Locale": "am"}, want: "am"},
		{name: "explicit english header", headers: map[string]string{"X-Locale": "en-GB"}, want: "en"},
		{name: "accept language amharic", headers: map[string]string{"Accept-Language": "am-ET,am;q=0.9,en;q=0.5"}, want: "am"},
		{name: "accept language english", headers: map[string]string{"Accept-Language": "en-US,en;q=0.9"}, want: "en"},
		{name: "unsupported language falls back", headers: map[string]string{"X-Locale": "fr"}, want: "en"},
		{name: "ethiopia without headers", country: "ET", want: "am"},
		{name: "no hints", want: "en"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := detectLocale(req, "", tc.country); got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveCountryPrefersHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-IPCountry", "us")
	lookupCalled := false
	country := ResolveCountry(req, func(string) (string, error) {
		lookupCalled = true
		return "DE", nil
	})
	if country != "US" {
		t.Fatalf("ResolveCountry = %q, want US", country)
	}
	if lookupCalled {
		t.Fatalf("lookup should not run when a header hint exists")
	}
}

func TestResolveCountryFallsBackToLookup(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:4711"
	country := ResolveCountry(req, func(ip string) (string, error) {
		if ip != "203.0.113.9" {
			t.Fatalf("lookup got ip %q", ip)
		}
		return "et", nil
	})
	if country != "ET" {
		t.Fatalf("ResolveCountry = %q, want ET", country)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSignAndVerifyJWT_RoundTrip(t *testing.T) {
	claims := TokenClaims{
		Sub:    "emp-1",
		Role:   "staff",
		Locale: "am",
		Exp:    time.Now().Add(time.Hour).Unix(),
	}
	token, err := SignJWT("secret", claims)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	got, err := VerifyJWT("secret", token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.Sub != "emp-1" || got.Role != "staff" || got.Locale != "am" {
		t.Fatalf("claims round trip failed: %+v", got)
	}
}

func TestVerifyJWT_RejectsTampering(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{Sub: "emp-1", Role: "staff"})

	if _, err := VerifyJWT("other-secret", token); err == nil {
		t.Fatal("token signed with a different secret must not verify")
	}

	// Swap the payload for one claiming the admin role; the signature no
	// longer matches.
	forged, _ := SignJWT("unknown", TokenClaims{Sub: "emp-1", Role: "admin"})
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]
	if _, err := VerifyJWT("secret", spliced); err == nil {
		t.Fatal("token with swapped payload must not verify")
	}
}

func TestVerifyJWT_RejectsExpired(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{
		Sub: "emp-1",
		Exp: time.Now().Add(-time.Minute).Unix(),
	})
	if _, err := VerifyJWT("secret", token); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestAuthJWT_StoresEmployeeContext(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{
		Sub:  "emp-1",
		Role: "admin",
		Exp:  time.Now().Add(time.Hour).Unix(),
	})

	var gotID, gotRole string
	handler := AuthJWT("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = EmployeeIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if gotID != "emp-1" || gotRole != "admin" {
		t.Fatalf("context not populated: id=%q role=%q", gotID, gotRole)
	}
}

func TestAuthJWT_MissingHeaderIs401(t *testing.T) {
	handler := AuthJWT("secret")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/me", nil))

	if rr.Code != 401 {
		t.Fatalf("got status %d, want 401", rr.Code)
	}
}

func TestRequireAdmin_RejectsStaff(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for staff")
	}))

	req := httptest.NewRequest("DELETE", "/v1/notifications/n-1", nil)
	req = req.WithContext(ContextWithEmployee(req.Context(), "emp-2", "staff"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != 403 {
		t.Fatalf("got status %d, want 403", rr.Code)
	}
}

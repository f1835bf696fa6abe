package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"maryjoy/internal/domain"
	"maryjoy/internal/middleware"
)

type fakeEmployees struct {
	byEmail map[string]*domain.Employee
	byID    map[string]*domain.Employee
}

func (f *fakeEmployees) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEmployees) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func testEmployee(t *testing.T, password string, active bool) *domain.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.Employee{
		ID:           "emp-1",
		FullName:     "Abebe Kebede",
		Email:        "abebe@example.org",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       active,
	}
}

func TestAuthLogin_IssuesVerifiableToken(t *testing.T) {
	employee := testEmployee(t, "correct horse", true)
	app := &App{
		JWTSecret: "test-secret",
		Employees: &fakeEmployees{byEmail: map[string]*domain.Employee{employee.Email: employee}},
	}

	body := strings.NewReader(`{"email":"abebe@example.org","password":"correct horse"}`)
	req := httptest.NewRequest("POST", "/v1/auth/login", body)
	rr := httptest.NewRecorder()

	app.AuthLogin(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status: got %d, want 200, body %s", rr.Code, rr.Body.String())
	}
	var resp loginResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	claims, err := middleware.VerifyJWT("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Sub != employee.ID {
		t.Fatalf("token subject: got %q, want %q", claims.Sub, employee.ID)
	}
	if claims.Role != string(domain.RoleAdmin) {
		t.Fatalf("token role: got %q, want admin", claims.Role)
	}
}

func TestAuthLogin_SameAnswerForUnknownEmailAndWrongPassword(t *testing.T) {
	employee := testEmployee(t, "correct horse", true)
	app := &App{
		JWTSecret: "test-secret",
		Employees: &fakeEmployees{byEmail: map[string]*domain.Employee{employee.Email: employee}},
	}

	cases := []struct {
		name string
		body string
	}{
		{"unknown email", `{"email":"nobody@example.org","password":"whatever"}`},
		{"wrong password", `{"email":"abebe@example.org","password":"battery staple"}`},
	}
	var bodies []string
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		app.AuthLogin(rr, httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(tc.body)))
		if rr.Code != 401 {
			t.Fatalf("%s: got status %d, want 401", tc.name, rr.Code)
		}
		bodies = append(bodies, rr.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("responses differ between unknown email and wrong password:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestAuthLogin_RejectsDisabledAccount(t *testing.T) {
	employee := testEmployee(t, "correct horse", false)
	app := &App{
		JWTSecret: "test-secret",
		Employees: &fakeEmployees{byEmail: map[string]*domain.Employee{employee.Email: employee}},
	}

	body := strings.NewReader(`{"email":"abebe@example.org","password":"correct horse"}`)
	rr := httptest.NewRecorder()
	app.AuthLogin(rr, httptest.NewRequest("POST", "/v1/auth/login", body))

	if rr.Code != 401 {
		t.Fatalf("got status %d, want 401", rr.Code)
	}
}

func TestMe_ReturnsProfileFromContext(t *testing.T) {
	employee := testEmployee(t, "correct horse", true)
	app := &App{
		Employees: &fakeEmployees{byID: map[string]*domain.Employee{employee.ID: employee}},
	}

	req := httptest.NewRequest("GET", "/v1/me", nil)
	req = req.WithContext(middleware.ContextWithEmployee(req.Context(), employee.ID, "admin"))
	rr := httptest.NewRecorder()

	app.Me(rr, req)

	if rr.Code != 200 {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	var profile profileDTO
	if err := json.NewDecoder(rr.Body).Decode(&profile); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if profile.Email != employee.Email {
		t.Fatalf("profile email: got %q, want %q", profile.Email, employee.Email)
	}
}

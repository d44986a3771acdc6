package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/core/domain"
)

type stubAuthService struct {
	users map[string]string // username -> password
}

func newStubAuthService() *stubAuthService {
	return &stubAuthService{users: make(map[string]string)}
}

func (s *stubAuthService) Register(_ context.Context, username, password, role string) (*domain.User, error) {
	if _, exists := s.users[username]; exists {
		return nil, domain.ErrUserExists
	}
	if role == "" {
		role = domain.RoleUser
	}
	s.users[username] = password
	now := time.Now().UTC()
	return &domain.User{
		ID:           "u1",
		Username:     username,
		PasswordHash: "$2a$10$notarealhash",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	if stored, ok := s.users[username]; ok && stored == password {
		return "token-for-" + username, nil
	}
	return "", domain.ErrInvalidCredentials
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Created(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"pw123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["username"] != "alice" || resp["role"] != domain.RoleUser {
		t.Fatalf("unexpected body: %v", resp)
	}
	if strings.Contains(rec.Body.String(), "pw123") || strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("response leaks credentials: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"alice"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"bob","password":"pw123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	c, _ = newTestContext(t, http.MethodPost, "/auth/register", `{"username":"bob","password":"pw456"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_ReturnsToken(t *testing.T) {
	svc := newStubAuthService()
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"carol","password":"s3cret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"carol","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.AccessToken != "token-for-carol" {
		t.Fatalf("unexpected token: %q", resp.AccessToken)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"ghost","password":"nope"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_NullsToken(t *testing.T) {
	h := NewAuthHandler(newStubAuthService())
	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set("user_id", "u1")
	c.Set("role", domain.RoleUser)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp logoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.AccessToken != nil {
		t.Fatalf("expected null access_token, got %v", *resp.AccessToken)
	}
}

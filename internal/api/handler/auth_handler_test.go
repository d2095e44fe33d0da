package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/reelspro/reels-api/internal/api/middleware"
	"github.com/reelspro/reels-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubSessionService struct {
	issueFn  func(ctx context.Context, email string) (*domain.Session, error)
	resolve  func(token string) domain.Identity
	revokeFn func(ctx context.Context, token string) error
}

func (s *stubSessionService) Issue(ctx context.Context, email string) (*domain.Session, error) {
	return s.issueFn(ctx, email)
}

func (s *stubSessionService) Resolve(_ context.Context, token string) domain.Identity {
	if s.resolve == nil {
		return domain.Anonymous
	}
	return s.resolve(token)
}

func (s *stubSessionService) Revoke(ctx context.Context, token string) error {
	if s.revokeFn == nil {
		return nil
	}
	return s.revokeFn(ctx, token)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "1", Email: email}, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"alice@example.com","password":"secret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in response")
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("response must not echo secret material")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"alice@example.com"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"bob@example.com","password":"pw2"}`)
	_ = h.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: "1", Email: email}, nil
		},
	}
	sessions := &stubSessionService{
		issueFn: func(ctx context.Context, email string) (*domain.Session, error) {
			return &domain.Session{Token: "tok-123", Email: email, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	h := NewAuthHandler(auth, sessions)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["identity"] != "a@x.com" {
		t.Fatalf("expected identity a@x.com, got %v", resp["identity"])
	}
	if resp["token"] != "tok-123" {
		t.Fatalf("expected session token, got %v", resp["token"])
	}
}

// Unknown email and wrong password must produce the same status and shape.
func TestAuthHandler_Login_FailuresIndistinguishable(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c1, rec1 := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	_ = h.Login(c1)
	c2, rec2 := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"ghost@x.com","password":"whatever"}`)
	_ = h.Login(c2)

	if rec1.Code != http.StatusBadRequest || rec2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", rec1.Code, rec2.Code)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("failure bodies differ: %s vs %s", rec1.Body.String(), rec2.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	revoked := ""
	sessions := &stubSessionService{
		revokeFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, sessions)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.IdentityKey, domain.Identity{Email: "alice@example.com"})
	c.Set(middleware.SessionTokenKey, "tok-123")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revoked != "tok-123" {
		t.Fatalf("expected tok-123 revoked, got %q", revoked)
	}
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessionService{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	_ = h.Logout(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

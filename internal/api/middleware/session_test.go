package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/reelspro/reels-api/internal/core/domain"
)

type stubSessions struct {
	resolveFn func(token string) domain.Identity
}

func (s *stubSessions) Issue(_ context.Context, email string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessions) Resolve(_ context.Context, token string) domain.Identity {
	return s.resolveFn(token)
}

func (s *stubSessions) Revoke(_ context.Context, _ string) error {
	return nil
}

func runSession(t *testing.T, sessions *stubSessions, header string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(sessions)(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return c
}

func TestSession_ValidToken(t *testing.T) {
	sessions := &stubSessions{
		resolveFn: func(token string) domain.Identity {
			if token != "tok-123" {
				t.Fatalf("unexpected token: %q", token)
			}
			return domain.Identity{Email: "alice@example.com"}
		},
	}

	c := runSession(t, sessions, "Bearer tok-123")

	identity, _ := c.Get(IdentityKey).(domain.Identity)
	if identity.Email != "alice@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if token, _ := c.Get(SessionTokenKey).(string); token != "tok-123" {
		t.Fatalf("unexpected token in context: %q", token)
	}
}

// The middleware must pass requests through as Anonymous, never reject them.
func TestSession_NoHeader(t *testing.T) {
	sessions := &stubSessions{
		resolveFn: func(token string) domain.Identity {
			if token != "" {
				t.Fatalf("expected empty token, got %q", token)
			}
			return domain.Anonymous
		},
	}

	c := runSession(t, sessions, "")

	identity, _ := c.Get(IdentityKey).(domain.Identity)
	if !identity.IsAnonymous() {
		t.Fatalf("expected Anonymous, got %+v", identity)
	}
}

func TestSession_MalformedHeader(t *testing.T) {
	sessions := &stubSessions{
		resolveFn: func(token string) domain.Identity {
			if token != "" {
				t.Fatalf("expected empty token for malformed header, got %q", token)
			}
			return domain.Anonymous
		},
	}

	for _, header := range []string{"tok-123", "Basic dXNlcjpwdw=="} {
		c := runSession(t, sessions, header)
		identity, _ := c.Get(IdentityKey).(domain.Identity)
		if !identity.IsAnonymous() {
			t.Fatalf("header %q: expected Anonymous, got %+v", header, identity)
		}
	}
}

func TestSession_CaseInsensitiveScheme(t *testing.T) {
	sessions := &stubSessions{
		resolveFn: func(token string) domain.Identity {
			if token != "tok-123" {
				t.Fatalf("unexpected token: %q", token)
			}
			return domain.Identity{Email: "bob@example.com"}
		},
	}

	c := runSession(t, sessions, "bearer tok-123")
	identity, _ := c.Get(IdentityKey).(domain.Identity)
	if identity.IsAnonymous() {
		t.Fatalf("lowercase bearer scheme must still resolve")
	}
}

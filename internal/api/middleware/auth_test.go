package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/driverportal/portal-api/internal/core/domain"
	"github.com/driverportal/portal-api/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, token string) (*domain.Principal, error)
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	return s.authenticateFn(ctx, token)
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	stub := &stubAuthService{authenticateFn: func(_ context.Context, token string) (*domain.Principal, error) {
		if token != "good-token" {
			t.Fatalf("unexpected token %q", token)
		}
		return &domain.Principal{Username: "alice", Role: domain.RoleAdmin}, nil
	}}
	c, rec := newAuthContext("Bearer good-token")

	called := false
	handler := Authenticate(stub)(func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok || p.Username != "alice" || p.Role != domain.RoleAdmin {
			t.Fatalf("principal not set: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
		t.Fatalf("service should not be called")
		return nil, nil
	}}

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer   "} {
		c, _ := newAuthContext(header)
		handler := Authenticate(stub)(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("header %q: expected ErrUnauthenticated, got %v", header, err)
		}
	}
}

func TestAuthenticate_PropagatesTokenErrors(t *testing.T) {
	for _, want := range []error{domain.ErrTokenExpired, domain.ErrSignatureInvalid, domain.ErrMalformedToken, domain.ErrUnauthenticated} {
		stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
			return nil, want
		}}
		c, _ := newAuthContext("bearer some-token")
		handler := Authenticate(stub)(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestRejectionReason(t *testing.T) {
	cases := map[error]string{
		domain.ErrTokenExpired:     "expired",
		domain.ErrSignatureInvalid: "signature",
		domain.ErrMalformedToken:   "malformed",
		domain.ErrUnauthenticated:  "unknown_subject",
		errors.New("db down"):      "error",
	}
	for err, want := range cases {
		if got := rejectionReason(err); got != want {
			t.Fatalf("%v: expected %s, got %s", err, want, got)
		}
	}
}

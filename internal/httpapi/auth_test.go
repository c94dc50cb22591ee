package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/BobinYang/ResXResourceManager/internal/auth"
	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

func callProtected(t *testing.T, tokenHash, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	registry := translation.NewRegistry("stub")
	server := NewServer(registry, nil, zerolog.Nop(), Options{APITokenHash: tokenHash})
	handler := server.requireToken()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec
}

func TestRequireTokenOpenWhenUnconfigured(t *testing.T) {
	t.Parallel()

	rec := callProtected(t, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through without a configured token, got %d", rec.Code)
	}
}

func TestRequireTokenAcceptsValidToken(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashToken("seekrit-token")
	if err != nil {
		t.Fatalf("hash token: %v", err)
	}

	rec := callProtected(t, hash, "Bearer seekrit-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected valid token to pass, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireTokenRejectsBadToken(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashToken("seekrit-token")
	if err != nil {
		t.Fatalf("hash token: %v", err)
	}

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong token", "Bearer not-the-token"},
		{"wrong scheme", "Basic seekrit-token"},
	}
	for _, tc := range cases {
		rec := callProtected(t, hash, tc.authorization)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

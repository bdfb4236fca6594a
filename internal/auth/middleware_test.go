package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/account-service/pkg/util"
)

func newTestApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"code": de.Code, "message": de.Message})
		},
	})
	mw := NewMiddleware(tm, zap.NewNop())
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"user_id": principal.UserID})
	})
	return app
}

func protectedStatus(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestMiddlewareMissingHeader(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret", 60))
	if code := protectedStatus(t, app, ""); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestMiddlewareBadScheme(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret", 60))
	if code := protectedStatus(t, app, "Basic abc"); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestMiddlewareInvalidToken(t *testing.T) {
	app := newTestApp(NewTokenManager("test-secret", 60))
	if code := protectedStatus(t, app, "Bearer garbage"); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}
	token, _, err := tm.GenerateToken("user-1", "kim@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := newTestApp(NewTokenManager("test-secret", 60))
	if code := protectedStatus(t, app, "Bearer "+token); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestMiddlewareValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	token, _, err := tm.GenerateToken("user-1", "kim@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := newTestApp(tm)
	if code := protectedStatus(t, app, "Bearer "+token); code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
}

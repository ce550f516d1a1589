package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthorizer struct {
	claims *auth.Claims
	err    error
}

func (s stubAuthorizer) Authorize(_ context.Context, _ string) (*auth.Claims, error) {
	return s.claims, s.err
}

func protectedApp(authorizer TokenAuthorizer) *fiber.App {
	app := fiber.New()
	app.Get("/admin", AuthJWT(authorizer), func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("%v|%v", c.Locals("adminId"), c.Locals("email")))
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		authorizer stubAuthorizer
		status     int
	}{
		{"SemCabecalho", "", stubAuthorizer{}, fiber.StatusUnauthorized},
		{"SemBearer", "Token abc", stubAuthorizer{}, fiber.StatusUnauthorized},
		{"TokenInvalido", "Bearer abc", stubAuthorizer{err: auth.ErrInvalidToken}, fiber.StatusUnauthorized},
		{"NaoAdmin", "Bearer abc", stubAuthorizer{err: usecases.ErrUnauthorized}, fiber.StatusUnauthorized},
		{"FalhaInterna", "Bearer abc", stubAuthorizer{err: errors.New("redis down")}, fiber.StatusInternalServerError},
		{"Valido", "Bearer abc", stubAuthorizer{claims: &auth.Claims{AdminID: "admin-1", Email: "ana@clinica.com"}}, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := protectedApp(tt.authorizer).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2)
	app := fiber.New()
	app.Post("/surveys", rl.Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/surveys", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/surveys", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(10)
	rl.GetLimiter("10.0.0.1")
	rl.GetLimiter("10.0.0.2")
	assert.Equal(t, 2, rl.Len())

	rl.mutex.Lock()
	rl.lastSeen["10.0.0.1"] = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.Cleanup()
	assert.Equal(t, 1, rl.Len())
}

func TestIsMonitored(t *testing.T) {
	assert.True(t, isMonitored("/admin/statistics"))
	assert.True(t, isMonitored("/surveys"))
	assert.False(t, isMonitored("/health"))
}

package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// TokenAuthorizer valida o token de um administrador
type TokenAuthorizer interface {
	Authorize(ctx context.Context, token string) (*auth.Claims, error)
}

// AuthJWT exige um token Bearer válido, não revogado, de um administrador
func AuthJWT(authorizer TokenAuthorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Cabeçalho Authorization ausente ou inválido",
			})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authorizer.Authorize(c.UserContext(), tokenStr)
		if err != nil {
			status := fiber.StatusUnauthorized
			message := "Token inválido ou expirado"
			switch {
			case errors.Is(err, usecases.ErrUnauthorized):
				message = "Usuário não autorizado"
			case !errors.Is(err, auth.ErrInvalidToken):
				status = fiber.StatusInternalServerError
				message = "Erro ao validar sessão"
			}
			return c.Status(status).JSON(fiber.Map{
				"success": false,
				"error":   message,
			})
		}

		c.Locals("adminId", claims.AdminID)
		c.Locals("email", claims.Email)
		c.Locals("token", tokenStr)

		return c.Next()
	}
}

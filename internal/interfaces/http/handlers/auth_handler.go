package handlers

import (
	"errors"
	"log"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest é o corpo do login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler lida com login e logout dos administradores
type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Login autentica um administrador
// @Summary Login do administrador
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "E-mail e senha"
// @Success 200 {object} map[string]interface{} "Token emitido"
// @Failure 400 {object} map[string]interface{} "Corpo inválido"
// @Failure 401 {object} map[string]interface{} "Credenciais inválidas ou usuário não autorizado"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	result, err := h.authUseCase.SignIn(c.UserContext(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errorResponse(c, fiber.StatusUnauthorized, "E-mail ou senha inválidos")
	case errors.Is(err, usecases.ErrUnauthorized):
		return errorResponse(c, fiber.StatusUnauthorized, "Usuário não autorizado")
	default:
		log.Printf("❌ Erro no login: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao fazer login")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// Logout revoga o token atual
// @Summary Logout do administrador
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Token revogado"
// @Failure 401 {object} map[string]interface{} "Token inválido"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)

	if err := h.authUseCase.SignOut(c.UserContext(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return errorResponse(c, fiber.StatusUnauthorized, "Token inválido ou expirado")
		}
		log.Printf("❌ Erro no logout: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao fazer logout")
	}

	return c.JSON(fiber.Map{"success": true})
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials indica e-mail ou senha incorretos
var ErrInvalidCredentials = errors.New("credenciais inválidas")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}
	return string(hash), nil
}

// LocalAuthenticator valida e-mail e senha contra a tabela admin_users (hash bcrypt)
type LocalAuthenticator struct {
	admins repositories.AdminRepository
}

// NewLocalAuthenticator cria uma nova instância de LocalAuthenticator
func NewLocalAuthenticator(admins repositories.AdminRepository) *LocalAuthenticator {
	return &LocalAuthenticator{admins: admins}
}

// Authenticate retorna o ID do administrador quando a senha confere
func (a *LocalAuthenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	admin, err := a.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if admin.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return admin.ID, nil
}

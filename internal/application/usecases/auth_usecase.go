package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/blacklist"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"
)

// Authenticator valida e-mail e senha e devolve o ID do usuário
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// LoginResult é o token emitido para o administrador
type LoginResult struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	Admin     entities.AdminUser `json:"admin"`
}

// AuthUseCase implementa login, logout e autorização do painel
type AuthUseCase struct {
	authenticator Authenticator
	admins        repositories.AdminRepository
	tokens        *auth.TokenManager
	blacklist     blacklist.Store
	membership    *cache.Cache[entities.AdminUser]
	cacheTTL      time.Duration
	clock         utils.Clock
}

// NewAuthUseCase cria uma nova instância de AuthUseCase
func NewAuthUseCase(
	authenticator Authenticator,
	admins repositories.AdminRepository,
	tokens *auth.TokenManager,
	store blacklist.Store,
	membership *cache.Cache[entities.AdminUser],
	cacheTTL time.Duration,
	clock utils.Clock,
) *AuthUseCase {
	return &AuthUseCase{
		authenticator: authenticator,
		admins:        admins,
		tokens:        tokens,
		blacklist:     store,
		membership:    membership,
		cacheTTL:      cacheTTL,
		clock:         clock,
	}
}

// SignIn autentica o usuário, confere se é administrador e emite o token
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	userID, err := u.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("erro ao autenticar: %w", err)
	}

	admin, err := u.lookupAdmin(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			log.Printf("🚫 Login negado para %s: não é administrador", email)
		}
		return nil, err
	}

	token, expiresAt, err := u.tokens.Generate(admin.ID, admin.Email, u.clock.Now())
	if err != nil {
		return nil, err
	}

	log.Printf("🔑 Administrador %s autenticado", admin.Email)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

// SignOut revoga o token até a sua expiração
func (u *AuthUseCase) SignOut(ctx context.Context, token string) error {
	now := u.clock.Now()
	claims, err := u.tokens.Parse(token, now)
	if err != nil {
		return err
	}

	if err := u.blacklist.Add(ctx, token, claims.Remaining(now)); err != nil {
		return err
	}
	u.membership.Delete(claims.AdminID)
	return nil
}

// Authorize valida o token e confirma que o portador continua sendo administrador
func (u *AuthUseCase) Authorize(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := u.tokens.Parse(token, u.clock.Now())
	if err != nil {
		return nil, err
	}

	revoked, err := u.blacklist.Contains(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	if _, err := u.lookupAdmin(ctx, claims.AdminID); err != nil {
		return nil, err
	}
	return claims, nil
}

// lookupAdmin consulta admin_users, memorizando o resultado positivo por cacheTTL
func (u *AuthUseCase) lookupAdmin(ctx context.Context, id string) (entities.AdminUser, error) {
	if admin, ok := u.membership.Get(id); ok {
		return admin, nil
	}

	admin, err := u.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return entities.AdminUser{}, ErrUnauthorized
		}
		return entities.AdminUser{}, fmt.Errorf("erro ao verificar administrador: %w", err)
	}

	u.membership.Set(id, *admin, u.cacheTTL)
	return *admin, nil
}

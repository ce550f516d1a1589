package supabase

import (
	"context"
	"fmt"
	"strings"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	gotrue "github.com/supabase-community/gotrue-go"
)

// Authenticator valida e-mail e senha no Supabase Auth (GoTrue)
type Authenticator struct {
	client gotrue.Client
}

// NewAuthenticator cria uma nova instância de Authenticator
func NewAuthenticator(client gotrue.Client) *Authenticator {
	return &Authenticator{client: client}
}

// Authenticate retorna o ID do usuário no Supabase Auth
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, err := a.client.SignInWithEmailPassword(email, password)
	if err != nil {
		if isInvalidGrant(err) {
			return "", fmt.Errorf("%w: %v", auth.ErrInvalidCredentials, err)
		}
		return "", fmt.Errorf("erro ao autenticar no supabase: %w", err)
	}
	return token.User.ID.String(), nil
}

// isInvalidGrant reconhece a resposta 400 do GoTrue para e-mail ou senha incorretos.
// O gotrue-go devolve apenas "response status code <n>: <corpo>".
func isInvalidGrant(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "response status code 400") || strings.Contains(msg, "invalid_grant")
}

package supabase

import (
	"context"
	"errors"
	"testing"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gotrue "github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// fakeGoTrue sobrescreve apenas o login por senha do cliente GoTrue
type fakeGoTrue struct {
	gotrue.Client
	token *types.TokenResponse
	err   error
}

func (f *fakeGoTrue) SignInWithEmailPassword(email, password string) (*types.TokenResponse, error) {
	return f.token, f.err
}

func TestAuthenticate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		token := &types.TokenResponse{}
		token.User.ID = id

		a := NewAuthenticator(&fakeGoTrue{token: token})
		got, err := a.Authenticate(context.Background(), "admin@clinica.com", "segredo")
		require.NoError(t, err)
		assert.Equal(t, id.String(), got)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		a := NewAuthenticator(&fakeGoTrue{err: errors.New(`response status code 400: {"error":"invalid_grant","error_description":"Invalid login credentials"}`)})
		_, err := a.Authenticate(context.Background(), "admin@clinica.com", "errada")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("ServiceUnavailable", func(t *testing.T) {
		a := NewAuthenticator(&fakeGoTrue{err: errors.New("response status code 503: upstream unavailable")})
		_, err := a.Authenticate(context.Background(), "admin@clinica.com", "segredo")
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		dialErr := errors.New("dial tcp 127.0.0.1:9999: connect: connection refused")
		a := NewAuthenticator(&fakeGoTrue{err: dialErr})
		_, err := a.Authenticate(context.Background(), "admin@clinica.com", "segredo")
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, err, dialErr)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewAuthenticator(&fakeGoTrue{}).Authenticate(ctx, "admin@clinica.com", "segredo")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

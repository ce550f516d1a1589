package usecases

import "errors"

var (
	// ErrValidation indica dados de entrada inválidos na submissão
	ErrValidation = errors.New("dados inválidos")
	// ErrUnauthorized indica usuário autenticado que não é administrador, ou token revogado
	ErrUnauthorized = errors.New("usuário não autorizado")
)

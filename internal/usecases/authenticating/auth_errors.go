package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken          = errors.New("token ausente")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrMissingSubject        = errors.New("token sem identificação do usuário")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

var authorizationErrors = []error{
	ErrMissingToken,
	ErrInvalidToken,
	ErrExpiredToken,
	ErrMissingSubject,
	ErrInsufficientPrivilege,
}

// AuthError é devolvido pelo Authenticator; Code vai direto para a resposta HTTP
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError indica se err deve virar 401/403 em vez de 500
func IsAuthorizationError(err error) bool {
	for _, target := range authorizationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

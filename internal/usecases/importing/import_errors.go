package importing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod   = errors.New("start date must not be after end date")
	ErrAccountRequired = errors.New("account is required")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountNotOwned = errors.New("account belongs to another user")

	ErrPersistImport = errors.New("error persisting period import")
	ErrFetchImports  = errors.New("error fetching period imports")
	ErrGenerateID    = errors.New("error generating import ID")
)

// ImportError é um erro com contexto adicional para importações de período
type ImportError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, accountID string, details string) *ImportError {
	return &ImportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}

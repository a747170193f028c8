package account

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNotOwned   = errors.New("account belongs to another user")
	ErrCampaignsRequired = errors.New("at least one campaign is required")
	ErrInvalidStatus     = errors.New("invalid campaign status")
	ErrMissingAdvertiser = errors.New("account has no advertiser configured")

	ErrTikTokIntegration = errors.New("error calling TikTok Business API")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")
	ErrDeleteAccount     = errors.New("error deleting account")
)

// AccountError carrega o código da API e, quando houver, a conta afetada
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	var b strings.Builder
	if e.AccountID != "" {
		fmt.Fprintf(&b, "account %s: ", e.AccountID)
	}
	b.WriteString(e.Err.Error())
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	return b.String()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return NewAccountErrorWithID(err, code, "", details)
}

func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{Err: err, Code: code, AccountID: accountID, Details: details}
}

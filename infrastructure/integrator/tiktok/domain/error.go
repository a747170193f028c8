package tiktokdomain

import (
	"encoding/json"
	"fmt"
)

// Envelope é o formato comum das respostas da Business API
type Envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

// APIError representa uma resposta com code diferente de zero
type APIError struct {
	Code      int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tiktok api error %d: %s (request_id: %s)", e.Code, e.Message, e.RequestID)
}

// IsAuthError indica token inválido ou expirado
func (e *APIError) IsAuthError() bool {
	return e.Code == 40102 || e.Code == 40104 || e.Code == 40105
}

// IsRateLimited indica que a cota de requisições foi excedida
func (e *APIError) IsRateLimited() bool {
	return e.Code == 40100
}

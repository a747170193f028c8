package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrMissingToken          = "AUTH_003" // Token ausente
	ErrInsufficientPrivilege = "AUTH_004" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Período inválido (início depois do fim)

	// Erros de recurso
	ErrAccountNotFound  = "RES_001" // Conta não encontrada
	ErrAccountNotOwned  = "RES_002" // Conta pertence a outro usuário
	ErrImportConflict   = "RES_003" // Importação do período gravada em paralelo
	ErrSyncInProgress   = "RES_004" // Sincronização já em andamento
	ErrNotFound         = "RES_005" // Rota não encontrada
	ErrMethodNotAllowed = "RES_006" // Método não permitido na rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRevenueSource     = "SRV_005" // Falha na fonte de receita
	ErrSpendSource       = "SRV_006" // Falha na fonte de gasto
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrAccountNotFound:       http.StatusNotFound,
	ErrAccountNotOwned:       http.StatusForbidden,
	ErrImportConflict:        http.StatusConflict,
	ErrSyncInProgress:        http.StatusConflict,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRevenueSource:         http.StatusBadGateway,
	ErrSpendSource:           http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

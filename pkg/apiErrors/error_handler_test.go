package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Período inválido", code: ErrInvalidPeriod, expectedStatus: http.StatusBadRequest},
		{name: "Conta de outro usuário", code: ErrAccountNotOwned, expectedStatus: http.StatusForbidden},
		{name: "Conflito de importação", code: ErrImportConflict, expectedStatus: http.StatusConflict},
		{name: "Fonte de receita", code: ErrRevenueSource, expectedStatus: http.StatusBadGateway},
		{name: "Código desconhecido", code: "XYZ", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusMethodNotAllowed, StatusFor(ErrMethodNotAllowed))
	assert.Equal(t, http.StatusConflict, StatusFor(ErrSyncInProgress))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(""))
}

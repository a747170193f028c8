package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	accountmocks "github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/account/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedAuthenticator struct {
	claims *domain.Claims
}

func (f fixedAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, nil
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := accountmocks.NewMockAccountService(ctrl)

	claims := &domain.Claims{Role: domain.RoleUser}
	claims.Subject = "user-1"

	cfg := &config.Config{
		App:    config.App{Timezone: "UTC"},
		Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	handler := NewHandler(cfg, Services{
		Accounts:      accounts,
		Authenticator: fixedAuthenticator{claims: claims},
		Gatherer:      prometheus.NewRegistry(),
	})

	t.Run("Rota autenticada chega ao serviço com o usuário do token", func(t *testing.T) {
		accounts.EXPECT().ListAccounts(gomock.Any(), "user-1").Return([]*domain.AccountResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Sem token é rejeitado antes do router", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Cron exige admin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestNew_SemAuthenticator(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	require.Error(t, err)
}

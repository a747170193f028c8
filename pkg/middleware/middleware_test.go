package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/usecases/authenticating"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (s stubAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if ok {
			w.Write([]byte(claims.UserID()))
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	valid := &domain.Claims{Role: domain.RoleUser}
	valid.Subject = "user-1"

	tests := []struct {
		name         string
		path         string
		header       string
		auth         stubAuthenticator
		expectStatus int
		expectCode   string
		expectBody   string
	}{
		{
			name:         "Token válido coloca as claims no contexto",
			path:         "/v1/accounts",
			header:       "Bearer abc",
			auth:         stubAuthenticator{claims: valid},
			expectStatus: http.StatusOK,
			expectBody:   "user-1",
		},
		{
			name:         "Healthcheck não exige token",
			path:         "/healthcheck",
			expectStatus: http.StatusOK,
		},
		{
			name:         "Metrics não exige token",
			path:         "/metrics",
			expectStatus: http.StatusOK,
		},
		{
			name:         "Sem header Authorization",
			path:         "/v1/accounts",
			expectStatus: http.StatusUnauthorized,
			expectCode:   apiErrors.ErrMissingToken,
		},
		{
			name:         "Header sem Bearer",
			path:         "/v1/accounts",
			header:       "Basic abc",
			expectStatus: http.StatusUnauthorized,
			expectCode:   apiErrors.ErrMissingToken,
		},
		{
			name:   "Token expirado",
			path:   "/v1/accounts",
			header: "Bearer abc",
			auth: stubAuthenticator{
				err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""),
			},
			expectStatus: http.StatusUnauthorized,
			expectCode:   apiErrors.ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			AuthMiddleware(tt.auth)(echoUser()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.expectBody != "" {
				assert.Equal(t, tt.expectBody, rec.Body.String())
			}
			if tt.expectCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectCode)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name         string
		claims       *domain.Claims
		expectStatus int
	}{
		{name: "Admin passa", claims: &domain.Claims{Role: domain.RoleAdmin}, expectStatus: http.StatusOK},
		{name: "Usuário comum é barrado", claims: &domain.Claims{Role: domain.RoleUser}, expectStatus: http.StatusForbidden},
		{name: "Sem claims", expectStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			rec := httptest.NewRecorder()

			var next http.Handler = AdminOnly()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			if tt.claims != nil {
				next = AuthMiddleware(stubAuthenticator{claims: tt.claims})(next)
				req.Header.Set("Authorization", "Bearer abc")
			}

			next.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	t.Run("Origem permitida recebe os headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/sync", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	req.Header.Set(log.CorrelationHeader, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(log.CorrelationHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

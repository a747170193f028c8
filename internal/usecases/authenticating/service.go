package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andresholmo/tiktok-arbitrage-api/internal/config"
	"github.com/andresholmo/tiktok-arbitrage-api/internal/domain"
	"github.com/andresholmo/tiktok-arbitrage-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator valida os tokens emitidos pelo provedor de identidade
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		secret: []byte(cfg.Secret),
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.UserID() == "" {
		return nil, NewAuthError(ErrMissingSubject, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

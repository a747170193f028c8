package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims do token emitido pelo provedor de identidade; o sub é o ID do usuário
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

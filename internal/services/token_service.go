package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/errors"
)

// Claims são as claims emitidas no token de sessão
type Claims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// TokenService emite e valida tokens de sessão assinados (HS256).
// Substitui o estado de autenticação puramente client-side da versão
// original: o cache no navegador deixa de ser autoridade.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService cria um novo TokenService
func NewTokenService(secret string, expiryHours int) *TokenService {
	if expiryHours < 1 {
		expiryHours = 24
	}
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Generate emite um token para o perfil autenticado
func (s *TokenService) Generate(profile *entities.Profile) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserType: string(profile.UserType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifica assinatura e expiração e devolve as claims
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrUnauthorized
	}
	return claims, nil
}

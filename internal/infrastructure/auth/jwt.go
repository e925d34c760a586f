// Package auth implementa o provedor de sessão: tokens JWT, hashes de senha e OAuth.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/threaddate-backend/internal/domain/entities"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

const issuer = "threaddate"

var ErrInvalidToken = errors.New("invalid token")

// claims são os campos do JWT de sessão
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenIssuer com HS256
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService cria o emissor de tokens
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

func (s *JWTService) Issue(profile *entities.Profile) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(profile.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   profile.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Parse(tokenString string) (*ports.SessionClaims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &ports.SessionClaims{
		ProfileID: c.Subject,
		Role:      entities.Role(c.Role),
	}, nil
}

var _ ports.TokenIssuer = (*JWTService)(nil)

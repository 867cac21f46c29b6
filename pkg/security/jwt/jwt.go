package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Withvansh/college-fest-sub003/pkg/auth"
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// Claims: стандартные поля плюс роль пользователя.
type Claims struct {
	jwt.RegisteredClaims
	Role auth.Role `json:"role"`
}

func (g *Generator) Generate(_ context.Context, user auth.User) (string, error) {
	now := g.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Role: user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

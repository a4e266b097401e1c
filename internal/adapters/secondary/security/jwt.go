package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/warblehq/warble/internal/core/domain"
)

type UserClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTProvider mints and verifies HS256 bearer tokens.
type JWTProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTProvider(secret []byte, issuer string, ttl time.Duration) *JWTProvider {
	return &JWTProvider{secret: secret, issuer: issuer, ttl: ttl}
}

func (j *JWTProvider) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Validate checks the signature and returns the subject. The signing
// method is pinned to HMAC so an attacker cannot downgrade the algorithm.
func (j *JWTProvider) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}

func (j *JWTProvider) TTL() time.Duration {
	return j.ttl
}

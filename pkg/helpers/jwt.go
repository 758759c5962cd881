package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and parses the stateless session tokens. The identity
// claim is the account email; whether that account still exists is checked by
// the auth middleware on every request, so deleting a user revokes all of
// their tokens.
type JWTManager struct {
	Secret []byte
	// TTL of zero issues tokens without an expiry claim.
	TTL time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Generate signs a token carrying the user's email.
func (m *JWTManager) Generate(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if m.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.TTL))
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Parse validates the signature and returns the claims. It does not consult
// the user directory; callers that gate access must do the live lookup.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

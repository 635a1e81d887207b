package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the session token validity window.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the session token payload. Issuer and verifier are the same
// backend, so a symmetric HS256 signature is sufficient.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// CreateToken mints a signed session token for the user, valid for TokenTTL.
func CreateToken(userID, email, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken returns the token's claims, or nil if the token is malformed,
// carries a bad signature, uses the wrong algorithm, or has expired.
func VerifyToken(tokenString, secret string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}

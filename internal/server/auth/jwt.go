// Package auth is the identity boundary: it turns bearer tokens into
// principals. Everything past this package trusts the principal it is
// handed; a request without a valid token runs as the anonymous principal.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vkarpovs/filevault/internal/common"
	"github.com/vkarpovs/filevault/internal/server/models"
)

// Claims extends the registered claims with the caller's principal.
type Claims struct {
	jwt.RegisteredClaims
	Principal string
}

func GenerateToken(principal models.Principal, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Principal: string(principal),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetPrincipalFromToken(tokenString string, secretKey []byte) (models.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return models.Anonymous, err
	}

	if !token.Valid {
		return models.Anonymous, common.ErrInvalidToken
	}

	return models.Principal(claims.Principal), nil
}

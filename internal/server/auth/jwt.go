// Package auth issues and verifies the short-lived tokens carried by admin
// dashboard sessions. The core services never see the passphrase or token;
// they receive an already-authenticated caller.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mpcportal/admissions/internal/common"
)

// Claims carries the standard claims plus the admin role marker.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

const RoleAdmin = "admin"

// GenerateAdminToken mints an HS256 token for an authenticated staff session.
func GenerateAdminToken(secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		Role: RoleAdmin,
	})

	return token.SignedString(secretKey)
}

// VerifyAdminToken parses the token and checks the admin role. Expired
// tokens yield common.ErrTokenExpired, everything else common.ErrInvalidToken.
func VerifyAdminToken(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid || claims.Role != RoleAdmin {
		return common.ErrInvalidToken
	}
	return nil
}

// Package auth implements token issuance/verification and password hashing
// for the taskboard server.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims bundles the registered JWT claims with the single custom claim the
// server cares about, the owning user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// GenerateToken mints an HS256-signed token asserting userID, expiring
// validityDuration from now. The token is opaque to callers; its validity is
// established solely through GetUserIDFromToken.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the signature and expiry of tokenString and
// returns the embedded user identifier. Expired tokens yield
// common.ErrTokenExpired; any other verification failure (bad signature,
// malformed structure, unexpected signing method) yields
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}

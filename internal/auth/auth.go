package auth

import (
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/haguru/bloglist/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ISSUER  = "github.com/haguru/bloglist"
	SUBJECT = "AUTHENTICATION"
)

// CustomClaims binds a token to exactly one user identity.
type CustomClaims struct {
	UserID string `json:"userid"`
	jwt.RegisteredClaims
}

// CreateToken issues a signed ES256 token for the given user id. The signing
// key is always passed explicitly so tests can run with isolated keys. Tokens
// carry an issuance time but no expiry; revocation policy is out of scope.
func CreateToken(userID string, privateKey *ecdsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", fmt.Errorf("private key is nil")
	}

	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   ISSUER,
			Subject:  SUBJECT,
			Audience: []string{"api" + ISSUER},
			ID:       uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signToken, err := token.SignedString(privateKey)
	if err != nil {
		return "", err
	}

	return signToken, nil
}

// VerifyToken parses and verifies a token string against the given public key.
// Any failure (malformed token, wrong algorithm, mismatched key) surfaces as
// apperrors.ErrInvalidToken so callers can translate it into a 401 response.
func VerifyToken(tokenString string, publicKey *ecdsa.PublicKey) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("%w: invalid claims", apperrors.ErrInvalidToken)
}

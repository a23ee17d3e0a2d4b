// Package jwt provides JWT issuance, verification and the Gin middleware
// that binds the authenticated user to the request context.
package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Claims is the identity assertion carried by an access token.
type Claims struct {
	UserID uint
	Email  string
}

// Service issues and verifies HS256-signed access tokens using a
// process-wide secret. Both halves live on one type so the same secret and
// clock rules apply to issuance and verification.
type Service struct {
	secret     []byte
	expiration time.Duration
}

// NewService creates a token service with the provided secret and expiration duration.
func NewService(secret string, expiration time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (s *Service) GenerateToken(userID uint, email string) (string, error) {
	claims := jwtv5.MapClaims{
		"sub":   userID,
		"exp":   time.Now().Add(s.expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": email,
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature and expiration of a token and returns its
// claims. It fails closed: any structural defect, signature mismatch, wrong
// signing algorithm, missing subject or expiry yields an error.
func (s *Service) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwtv5.Parse(tokenStr, func(t *jwtv5.Token) (interface{}, error) {
		// 署名アルゴリズムをチェック（HMACのみ許可）
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, jwtv5.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	// JWTの数値はfloat64としてデコードされる
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, errors.New("missing subject claim")
	}

	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(sub), Email: email}, nil
}

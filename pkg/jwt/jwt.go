package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	UserID  uint   `json:"user_id"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
	Type    string `json:"typ"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token of the given type. Tokens carry a random JTI
// so refresh tokens can be blacklisted individually on logout.
func GenerateToken(secret, tokenType string, userID uint, role string, isAdmin bool, ttl time.Duration) (string, time.Time, error) {
	expireAt := time.Now().Add(ttl)
	claims := &Claims{
		UserID:  userID,
		Role:    role,
		IsAdmin: isAdmin,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "takaful",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenStr, expireAt, nil
}

// GeneratePair issues an access + refresh token pair for a user.
func GeneratePair(secret string, userID uint, role string, isAdmin bool, accessTTL, refreshTTL time.Duration) (access, refresh string, err error) {
	access, _, err = GenerateToken(secret, TypeAccess, userID, role, isAdmin, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, _, err = GenerateToken(secret, TypeRefresh, userID, role, isAdmin, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ParseTyped parses a token and additionally requires its typ claim to match.
func ParseTyped(secret, tokenStr, tokenType string) (*Claims, error) {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, fmt.Errorf("expected %s token, got %s", tokenType, claims.Type)
	}
	return claims, nil
}

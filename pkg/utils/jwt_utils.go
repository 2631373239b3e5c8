package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey is set once at startup from configuration via ConfigureJWT.
var jwtSecretKey []byte

// accessTokenTTL defaults to 24 hours, matching what the frontend expects.
var accessTokenTTL = 24 * time.Hour

const jwtIssuer = "gatoco-api"

// Claims defines the JWT claims structure for the veterinary API.
type Claims struct {
	UserID         int64  `json:"user_id"`
	Email          string `json:"email"`
	IsVeterinarian bool   `json:"role"` // false = cliente, true = veterinario
	jwt.RegisteredClaims
}

// ConfigureJWT installs the signing secret and token lifetime. Must be called
// before any token is generated or validated.
func ConfigureJWT(secret string, ttl time.Duration) {
	jwtSecretKey = []byte(secret)
	if ttl > 0 {
		accessTokenTTL = ttl
	}
}

// GenerateAccessToken creates a new JWT access token for a given user.
func GenerateAccessToken(userID int64, email string, isVeterinarian bool) (string, error) {
	expirationTime := time.Now().Add(accessTokenTTL)
	claims := &Claims{
		UserID:         userID,
		Email:          email,
		IsVeterinarian: isVeterinarian,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    jwtIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string.
// It returns the claims if the token is valid, otherwise an error.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

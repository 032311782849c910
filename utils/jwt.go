package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"studeaf/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT for the given user. The subject is the
// user id and the role travels as its own claim so the auth middleware can
// build the request's auth context without touching the user record.
func GenerateToken(userID int64, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentityFromToken extracts the user id and role from a valid JWT.
func ExtractIdentityFromToken(tokenString string) (int64, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, "", errors.New("token does not contain a valid 'sub' claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", errors.New("token subject is not a user id")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return 0, "", errors.New("token does not contain a valid 'role' claim")
	}
	return userID, role, nil
}

// GenerateVerificationToken issues a short-lived single-purpose token used to
// authorize a password change. The jti lets the consumer burn it after use.
func GenerateVerificationToken(userID int64, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"type": "password_change",
		"jti":  uuid.New().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ExtractVerificationClaims validates a password-change token and returns the
// user id it was issued to together with its jti.
func ExtractVerificationClaims(tokenString string) (int64, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}
	if typ, _ := claims["type"].(string); typ != "password_change" {
		return 0, "", errors.New("not a password change token")
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", errors.New("token subject is not a user id")
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return 0, "", errors.New("token does not carry a jti")
	}
	return userID, jti, nil
}

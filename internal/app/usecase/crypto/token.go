package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	usecase_errors "github.com/laundrypro/go-laundry-service/internal/app/usecase/errors"
)

const tokenExpiration = 24 * time.Hour

var secretKey = []byte("laundry-service-secret")

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID   `json:"user_id"`
	Role   entity.UserRole `json:"role"`
}

// Initialize replaces the built-in signing key with the configured one.
func Initialize(secret string) {
	if len(secret) != 0 {
		secretKey = []byte(secret)
	}
}

func BuildJWTString(userID entity.UserID, role entity.UserRole) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiration)),
		},
		UserID: userID,
		Role:   role,
	})

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("error while signing jwt token: %w", err)
	}

	return signed, nil
}

func GetUserClaims(tokenString string) (entity.UserID, entity.UserRole, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", usecase_errors.ErrTokenExpired
		}

		return "", "", usecase_errors.ErrTokenNotValid
	}

	if !token.Valid {
		return "", "", usecase_errors.ErrTokenNotValid
	}

	return claims.UserID, claims.Role, nil
}

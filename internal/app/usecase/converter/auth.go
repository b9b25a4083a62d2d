package converter

import (
	"fmt"
	"strings"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/crypto"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

func GetUserFromAuthHeader(header string) (entity.UserID, entity.UserRole, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return "", "", fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return "", "", fmt.Errorf("first auth header part is invalid")
	}

	userID, role, err := crypto.GetUserClaims(headerParts[1])
	if err != nil {
		return "", "", fmt.Errorf("error while getting user claims from token: %w", err)
	}

	return userID, role, nil
}

func SetUserToAuthHeaderFormat(userID entity.UserID, role entity.UserRole) (string, error) {
	token, err := crypto.BuildJWTString(userID, role)
	if err != nil {
		return "", fmt.Errorf("error while creating jwt token: %w", err)
	}

	return fmt.Sprintf("%s %s", bearerHeader, token), nil
}

package crypto

import (
	"testing"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	usecase_errors "github.com/laundrypro/go-laundry-service/internal/app/usecase/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := BuildJWTString("ac2a4811-4f10-487f-bde3-e39a14af7cd8", entity.RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := GetUserClaims(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8"), userID)
	assert.Equal(t, entity.RoleCustomer, role)
}

func TestInvalidToken(t *testing.T) {
	_, _, err := GetUserClaims("not.a.token")

	assert.ErrorIs(t, err, usecase_errors.ErrTokenNotValid)
}

package token

import (
	"context"
	"net/http"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	usecase "github.com/laundrypro/go-laundry-service/internal/app/usecase/converter"
	"go.uber.org/zap"
)

func TokenParserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header[usecase.AuthHeader]
		userCtx := processAuthUser(authHeader)

		ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func processAuthUser(authHeader []string) entity.UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return entity.CreateUserIDCtx("", "", http.StatusUnauthorized)
	}

	userID, role, err := usecase.GetUserFromAuthHeader(authHeader[0])
	if err != nil {
		zap.L().Error("error while parsing auth header", zap.Error(err))

		return entity.CreateUserIDCtx("", "", http.StatusUnauthorized)
	}

	if !userID.Valid() {
		zap.L().Error("empty user id in authorization header")

		return entity.CreateUserIDCtx("", "", http.StatusBadRequest)
	}

	return entity.CreateUserIDCtx(userID, role, http.StatusOK)
}

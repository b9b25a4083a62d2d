package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
	UpdateTimeout  = 5 * time.Second
)

const (
	ErrTokenExpired = "token has expired"
	ErrInvalidAuth  = "auth credentials are invalid"
)

func GetUserCtx(w http.ResponseWriter, r *http.Request) (entity.UserIDCtx, error) {
	userIDCtx, ok := r.Context().Value(entity.UserIDCtxKey{}).(entity.UserIDCtx)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.UserIDCtx{}, fmt.Errorf("user id couldn't obtain from context")
	}

	if userIDCtx.StatusCode == http.StatusBadRequest {
		WriteError(w, http.StatusUnauthorized, ErrInvalidAuth)
		return entity.UserIDCtx{}, fmt.Errorf("failed auth credentials")
	}

	if userIDCtx.StatusCode == http.StatusUnauthorized {
		WriteError(w, http.StatusUnauthorized, ErrTokenExpired)
		return entity.UserIDCtx{}, fmt.Errorf("token expired or missing")
	}

	if userIDCtx.StatusCode == http.StatusOK && !userIDCtx.UserID.Valid() {
		WriteError(w, http.StatusUnauthorized, ErrInvalidAuth)
		return entity.UserIDCtx{}, fmt.Errorf("invalid user id with status ok")
	}

	return userIDCtx, nil
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeResponse(w, statusCode, model.Response{
		Success: true,
		Data:    data,
	})
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeResponse(w, statusCode, model.Response{
		Success: false,
		Error:   message,
	})
}

func writeResponse(w http.ResponseWriter, statusCode int, response model.Response) {
	out, err := json.Marshal(response)
	if err != nil {
		zap.L().Error("error while marshalling response envelope", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	httputils "github.com/laundrypro/go-laundry-service/internal/app/controller/http/utils"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	err_storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/errors"
	usecase "github.com/laundrypro/go-laundry-service/internal/app/usecase/converter"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/crypto"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ErrEmailExists        = "user with this email already exists"
	ErrWrongCredentials   = "invalid email or password"
	ErrInvalidUserRequest = "wrong user credentials format"
)

type UserAuthenticator interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
}

type AuthUser struct {
	storage UserAuthenticator
}

func New(storage UserAuthenticator) AuthUser {
	return AuthUser{
		storage: storage,
	}
}

func (a *AuthUser) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.createUserFromRequest(w, r)
		if err != nil {
			zap.L().Error("error while parsing user credentials while registering user", zap.Error(err))
			return
		}

		err = a.createUser(user, w)
		if err != nil {
			return
		}

		a.sendAuthorizedUser(user, w)
	}
}

func (a *AuthUser) AuthenticateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var loginRequest model.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&loginRequest)
		if err != nil {
			httputils.WriteError(w, http.StatusBadRequest, ErrInvalidUserRequest)
			zap.L().Error("error while decoding login request", zap.Error(err))
			return
		}
		defer r.Body.Close()

		if err := validator.ValidateLoginRequest(loginRequest); err != nil {
			httputils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		storageUser, err := a.authenticateUser(loginRequest, w)
		if err != nil {
			zap.L().Error("error while authenticating user", zap.Error(err))
			return
		}

		a.sendAuthorizedUser(storageUser, w)
	}
}

func (a *AuthUser) createUserFromRequest(w http.ResponseWriter, r *http.Request) (entity.User, error) {
	var registerRequest model.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerRequest)
	if err != nil {
		httputils.WriteError(w, http.StatusBadRequest, ErrInvalidUserRequest)
		return entity.User{}, fmt.Errorf("error while decoding register request: %w", err)
	}
	defer r.Body.Close()

	if err := validator.ValidateRegisterRequest(registerRequest); err != nil {
		httputils.WriteError(w, http.StatusBadRequest, err.Error())
		return entity.User{}, fmt.Errorf("invalid register request: %w", err)
	}

	hashedPassword, err := crypto.HashPassword(registerRequest.Password)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.User{}, fmt.Errorf("error while hashing password: %w", err)
	}

	return entity.User{
		ID:          entity.UserID(uuid.New().String()),
		Name:        registerRequest.Name,
		Email:       registerRequest.Email,
		Password:    hashedPassword,
		Phone:       registerRequest.Phone,
		Role:        entity.RoleCustomer,
		IsActive:    true,
		DateCreated: time.Now(),
	}, nil
}

func (a *AuthUser) createUser(user entity.User, w http.ResponseWriter) error {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	err := a.storage.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, err_storage.ErrEmailExists) {
			zap.L().Info("email exists in storage while registering user", zap.String("email", user.Email))
			httputils.WriteError(w, http.StatusConflict, ErrEmailExists)
			return fmt.Errorf("error while creating user: %w", err)
		}

		zap.L().Error("error while creating user", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("error while creating user: %w", err)
	}

	return nil
}

func (a *AuthUser) authenticateUser(loginRequest model.LoginRequest, w http.ResponseWriter) (entity.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	storageUser, err := a.storage.GetUserByEmail(ctx, loginRequest.Email)
	if err != nil {
		if errors.Is(err, err_storage.ErrUserNotFound) {
			httputils.WriteError(w, http.StatusUnauthorized, ErrWrongCredentials)
			return entity.User{}, err
		}

		w.WriteHeader(http.StatusInternalServerError)
		return entity.User{}, err
	}

	err = crypto.CheckPasswordHash(loginRequest.Password, storageUser.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrWrongPassword) {
			httputils.WriteError(w, http.StatusUnauthorized, ErrWrongCredentials)
			return entity.User{}, err
		}

		w.WriteHeader(http.StatusInternalServerError)
		return entity.User{}, err
	}

	return storageUser, nil
}

func (a *AuthUser) sendAuthorizedUser(user entity.User, w http.ResponseWriter) {
	token, err := usecase.SetUserToAuthHeaderFormat(user.ID, user.Role)
	if err != nil {
		zap.L().Error("error while preparing auth header", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add(usecase.AuthHeader, token)
	httputils.WriteSuccess(w, http.StatusOK, model.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
}

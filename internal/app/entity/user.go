package entity

import (
	"net/http"
	"time"
)

type UserID string

func (id UserID) String() string {
	return string(id)
}

func (id UserID) Valid() bool {
	return len(id) != 0
}

type UserRole string

const (
	RoleCustomer UserRole = `customer`
	RoleAdmin    UserRole = `admin`
	RoleStaff    UserRole = `staff`
)

type User struct {
	ID          UserID
	Name        string
	Email       string
	Password    string
	Phone       string
	Role        UserRole
	IsActive    bool
	DateCreated time.Time
}

type UserIDCtxKey struct{}

type UserIDCtx struct {
	UserID     UserID
	Role       UserRole
	StatusCode int
}

func CreateUserIDCtx(userID UserID, role UserRole, code int) UserIDCtx {
	return UserIDCtx{
		UserID:     userID,
		Role:       role,
		StatusCode: code,
	}
}

func (c UserIDCtx) IsAdmin() bool {
	return c.StatusCode == http.StatusOK && c.Role == RoleAdmin
}

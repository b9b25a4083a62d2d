package storage

import "errors"

var (
	ErrEmailExists  = errors.New("user with given email already exists in storage")
	ErrUserNotFound = errors.New("user with given credentials doesn't exist in storage")

	ErrServiceNotFound = errors.New("service with given id doesn't exist in storage")

	ErrOrderNotFound         = errors.New("order with given id doesn't exist in storage")
	ErrOrdersForUserNotFound = errors.New("orders for given user don't exist in storage")
)

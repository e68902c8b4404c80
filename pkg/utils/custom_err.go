package utils

import "errors"

var (
	ErrSubscriptionAlreadyIssued = errors.New("subscription already issued for this payment")
	ErrProductNotFound           = errors.New("product not found")
	ErrUserNotFound              = errors.New("user not found")
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrDatabaseError             = errors.New("database error")
)

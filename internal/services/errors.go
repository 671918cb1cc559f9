package services

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccessDenied           = errors.New("access denied: account does not belong to user")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidTransactionType = errors.New("transaction type must be credit or debit")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrBalanceOutOfRange      = errors.New("balance out of range")
	ErrDuplicateTransaction   = errors.New("transaction id already exists")
	ErrDuplicateGoal          = errors.New("goal id already exists")
)

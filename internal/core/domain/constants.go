package domain

import "errors"

var (
	ErrSendingReplyFailed     = errors.New("failed to send reply")
	ErrCommandNotFound        = errors.New("command not found")
	ErrRegistryNotInitialized = errors.New("can't fetch command, registry not initialized")
)

var (
	ErrUnknownOperation     = errors.New("unknown arithmetic operation")
	ErrInsufficientOperands = errors.New("not enough numbers")
	ErrTooManyOperands      = errors.New("too many numbers")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrNumberParse          = errors.New("invalid number")
)

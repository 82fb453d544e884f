package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction   = errors.New("unknown point action")
	ErrInvalidAmount   = errors.New("point amount must be positive")
	ErrAccountNotFound = errors.New("account not found")
)

// InsufficientBalanceError reports the shortfall so callers can show the user
// exactly how many points they are missing.
type InsufficientBalanceError struct {
	Required int
	Current  int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, current %d", e.Required, e.Current)
}

// Needed returns how many points are missing.
func (e *InsufficientBalanceError) Needed() int {
	return e.Required - e.Current
}

// AsInsufficientBalance unwraps err into an InsufficientBalanceError if it is one.
func AsInsufficientBalance(err error) (*InsufficientBalanceError, bool) {
	var ib *InsufficientBalanceError
	if errors.As(err, &ib) {
		return ib, true
	}
	return nil, false
}

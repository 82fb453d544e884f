package service

import "errors"

var (
	ErrInvalidReward          = errors.New("invalid reward")
	ErrMissingShippingAddress = errors.New("shipping address required for physical rewards")
)

package services

import (
	"errors"

	"littlelemon-api/policy"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyCart    = errors.New("cart is empty")

	// ErrForbidden is shared with the policy package so handlers map both
	// sources to the same response.
	ErrForbidden = policy.ErrForbidden
)

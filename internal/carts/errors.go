package carts

import "errors"

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrForbidden        = errors.New("cart belongs to another user")
)

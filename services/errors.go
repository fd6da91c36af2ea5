package services

import "errors"

var (
	ErrInvalidReference = errors.New("invalid item id format")
	ErrItemNotFound     = errors.New("one or more items not found")
	ErrNoItems          = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidLimit     = errors.New("limit must not be negative")
	ErrInvalidMenuItem  = errors.New("menu item cannot be priced")
)

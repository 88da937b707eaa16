package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrMissingPageID       = errors.New("page id is required")
	ErrMissingCollectionID = errors.New("collection id is required")
	ErrMissingDestination  = errors.New("destination url is required")

	ErrCheckoutNotConfigured = errors.New("checkout upstream is not configured")
	ErrRelayNotConfigured    = errors.New("relay forwarding is not configured")
)

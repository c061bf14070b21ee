package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// envelope status codes; anything else is a persistence failure and renders
// as a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDuplicateCustomer  = errors.New("customer with this name already exists")
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCustomer    = errors.New("invalid customer_id")
	ErrDuplicateNetwork   = errors.New("network already exists")
	ErrVersionNotNewer    = errors.New("new version must be higher than current latest")
)

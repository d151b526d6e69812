package registry

import "errors"

var (
	ErrUnitExists    = errors.New("registry: unit already exists")
	ErrUnitNotFound  = errors.New("registry: unit not found")
	ErrNotOwner      = errors.New("registry: from is not the current owner")
	ErrUnauthorized  = errors.New("registry: caller not authorized")
	ErrZeroRecipient = errors.New("registry: zero recipient")
)

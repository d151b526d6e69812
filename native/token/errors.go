package token

import "errors"

var (
	ErrNotController     = errors.New("token: caller is not the controller")
	ErrNotPending        = errors.New("token: caller is not the pending controller")
	ErrControllerSet     = errors.New("token: controller already initialised")
	ErrInvalidAmount     = errors.New("token: amount must be positive")
	ErrInvalidController = errors.New("token: controller identity required")
)

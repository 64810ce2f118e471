package apperror

import "errors"

var (
	ErrNotFoundData     = errors.New("data not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUnknownStorage   = errors.New("unknown storage type")
)

package generator

import "errors"

var (
	ErrInvalidLength = errors.New("invalid password length")
	ErrUnknownStyle  = errors.New("unknown generation style")
	ErrInvalidCount  = errors.New("invalid password count")
)

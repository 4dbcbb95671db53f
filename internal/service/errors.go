package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

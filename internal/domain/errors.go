package domain

import "errors"

var (
	ErrMissingFile    = errors.New("missing file")
	ErrInvalidUpload  = errors.New("invalid upload")
	ErrUploadTooLarge = errors.New("upload too large")
	ErrInvalidResult  = errors.New("invalid verification result")
	ErrNotFound       = errors.New("not found")
)

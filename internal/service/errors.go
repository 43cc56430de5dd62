package service

import "errors"

var (
	ErrInvalidID         = errors.New("id must be greater than zero")
	ErrIDMismatch        = errors.New("id in path does not match body")
	ErrNotFound          = errors.New("not found")
	ErrVillaExists       = errors.New("Villa already exists!")
	ErrVillaNumberExists = errors.New("Villa Number already exists!")
	ErrInvalidVilla      = errors.New("Villa ID is invalid!")
	ErrInvalidPatch      = errors.New("invalid json patch")
	ErrNoImage           = errors.New("villa has no image")
	ErrReaderNil         = errors.New("reader is nil")
)

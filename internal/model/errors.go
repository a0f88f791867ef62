package model

import "errors"

var (
	// ErrNotFound is returned when a stored report is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a stored report already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a value is not valid.
	ErrNotValid = errors.New("not valid")
)

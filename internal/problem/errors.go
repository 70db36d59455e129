package problem

import "errors"

var (
	// ErrInvalid indicates an inconsistent problem description.
	ErrInvalid = errors.New("problem: invalid description")
	// ErrFormat indicates an unknown encoding.
	ErrFormat = errors.New("problem: unknown format")
)

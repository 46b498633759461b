package inventory

import "errors"

var (
	ErrColorNotFound = errors.New("color not found")
)

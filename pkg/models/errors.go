package models

import "errors"

// ErrNotFound is returned by stores when a requested entity does not exist.
// Callers check it with errors.Is and translate it at the HTTP boundary.
var ErrNotFound = errors.New("not found")

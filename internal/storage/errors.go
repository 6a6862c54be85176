package storage

import "errors"

// ErrBadFormat is returned when a grid file cannot be understood.
var ErrBadFormat = errors.New("bad grid file format")

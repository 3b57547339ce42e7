package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")
var ErrDuplicateEmail = errors.New("email already registered")

// ErrStaleStatus is returned when an application's status changed between
// read and conditional update.
var ErrStaleStatus = errors.New("application status changed concurrently")

package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the database.
// Handlers map this to the rendered 404 page (or a "check the ids" flash for
// show creation).
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a business
// rule (e.g. missing required name, unparseable start time).
// Handlers map this to a failure flash message; nothing is persisted.
var ErrValidation = errors.New("validation error")

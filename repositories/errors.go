package repositories

import "errors"

// ErrNotFound is returned when a document does not exist. A malformed
// ObjectID is reported the same way: callers cannot tell the difference and
// should not need to.
var ErrNotFound = errors.New("not found")

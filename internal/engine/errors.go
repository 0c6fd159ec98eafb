package engine

import "errors"

// ErrInsufficientSource is returned when dependent entities are requested
// against an empty users or products set. Dependent generators fail fast
// instead of producing dangling references.
var ErrInsufficientSource = errors.New("insufficient source data")

package query

import "errors"

// ErrEmptyOperands is returned by NewAnd/NewOr when given zero
// operands: an empty operand list is a caller's mistake, reported at
// the call boundary, never panicked.
var ErrEmptyOperands = errors.New("query: and/or requires at least one operand")

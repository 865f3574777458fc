package bitpage

import (
	"bytes"
	"errors"
	"fmt"
)

// Sentinel input errors: these report a caller's mistake, not a
// logic violation. Callers may errors.Is against these; DecodeError
// wraps ErrUnknownTag and ErrTruncated with positional context.
var (
	ErrUnknownTag = errors.New("bitpage: unknown encoded tag")
	ErrTruncated  = errors.New("bitpage: truncated encoded buffer")
)

// DecodeError reports a decode failure at a specific byte offset.
type DecodeError struct {
	Err    error
	Offset int
}

func (e *DecodeError) Error() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "bitpage: decode error @ offset %d: %v", e.Offset, e.Err)
	return buf.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// assert panics if cond is false. Used only at invariant boundaries:
// logic violations, not caller mistakes. Never for input validation,
// which always returns a typed error instead.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("bitpage: assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}

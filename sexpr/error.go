// SPDX-License-Identifier: MIT
package sexpr

import (
	"fmt"

	"github.com/katalvlaran/edakernel/internal/errkind"
)

// ParseError is a parse-time failure with a source location and the raw
// text that triggered it, wrapping one of errkind's Kind values (typically
// InvalidSExpression or UnknownToken for tokenizer/parser failures).
type ParseError struct {
	Line   int
	Offset string
	Err    *errkind.Error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s (near %q)", e.Line, e.Err.Error(), e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(line int, offset string, kind errkind.Kind, message string) *ParseError {
	return &ParseError{Line: line, Offset: offset, Err: errkind.New(kind, message)}
}

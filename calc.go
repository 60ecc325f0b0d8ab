// Package calc evaluates expressions made of nested add, sub, mult, div and
// let calls over signed integers and single-letter variables, for instance:
//
//	let(a, 5, let(b, mult(a, 10), add(b, a)))
//
// Every call parses its input from scratch and owns its whole evaluation, so
// concurrent calls need no synchronization.
package calc

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/xiam/calc/lexer"
	"github.com/xiam/calc/parser"
)

// Reader computes an equation read from an io.Reader.
type Reader struct {
	r    io.Reader
	opts []Option
}

// Compute evaluates the equation in. A nil slice is rejected with
// ErrNullInput.
func Compute(in []byte, opts ...Option) (int64, error) {
	if in == nil {
		return 0, ErrNullInput
	}
	return ComputeString(string(in), opts...)
}

// ComputeString evaluates equation. All spaces are removed before parsing;
// nothing left to parse is rejected with ErrEmptyInput.
func ComputeString(equation string, opts ...Option) (int64, error) {
	expr := lexer.StripSpaces(equation)
	if expr == "" {
		return 0, ErrEmptyInput
	}

	e := &evaluator{cfg: newConfig(opts)}
	return e.eval(nil, parser.Build(expr))
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, opts: opts}
}

// Compute reads the whole input and evaluates it. Leading and trailing
// whitespace, like a final newline, is ignored.
func (r *Reader) Compute() (int64, error) {
	if r.r == nil {
		return 0, ErrNullInput
	}
	in, err := io.ReadAll(r.r)
	if err != nil {
		return 0, errors.Wrap(err, "read equation")
	}
	return ComputeString(strings.TrimSpace(string(in)), r.opts...)
}

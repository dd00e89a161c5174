package parser

import (
	"errors"
	"fmt"

	"github.com/es-debug/log-analyzer/internal/domain"
)

var (
	ErrMalformedLine = errors.New("malformed log line")
	ErrNoSources     = errors.New("no readable log sources")

	errLineTooLong     = fmt.Errorf("line longer than %d bytes", maxLineSize)
	errTimestampLayout = errors.New("timestamp does not match " + domain.TimeLayout)
)

type Kind int

const (
	KindMalformed Kind = iota
	KindInvalidTimestamp
	KindInvalidNumber
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTimestamp:
		return "invalid timestamp"
	case KindInvalidNumber:
		return "invalid number"
	default:
		return "malformed"
	}
}

// ErrParse reports a line that could not be turned into a record. Every
// ErrParse matches ErrMalformedLine.
type ErrParse struct {
	Kind Kind
	Line string
	Err  error
}

func NewErrParse(kind Kind, line string, err error) *ErrParse {
	return &ErrParse{
		Kind: kind,
		Line: line,
		Err:  err,
	}
}

func (e *ErrParse) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %q: %s", ErrMalformedLine, e.Kind, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: %s: %q", ErrMalformedLine, e.Kind, e.Line)
}

func (e *ErrParse) Unwrap() error {
	return e.Err
}

func (e *ErrParse) Is(target error) bool {
	return target == ErrMalformedLine
}

package parser

import "fmt"

type ErrEmptyLogPath struct{}

func (e ErrEmptyLogPath) Error() string {
	return "log path is empty"
}

type ErrInvalidTimeRange struct {
	From string
	To   string
}

func (e ErrInvalidTimeRange) Error() string {
	return fmt.Sprintf("start date %q is after end date %q", e.From, e.To)
}

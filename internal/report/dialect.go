package report

import (
	"fmt"
	"strings"
)

type Dialect int

const (
	Markdown Dialect = iota
	AsciiDoc
)

func (d Dialect) String() string {
	switch d {
	case Markdown:
		return "markdown"
	case AsciiDoc:
		return "adoc"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

type ErrUnsupportedDialect struct {
	Dialect string
}

func (e ErrUnsupportedDialect) Error() string {
	return fmt.Sprintf("unsupported report format %q (use markdown or adoc)", e.Dialect)
}

// ParseDialect accepts markdown, md, adoc and asciidoc in any case.
func ParseDialect(token string) (Dialect, error) {
	switch strings.ToLower(token) {
	case "markdown", "md":
		return Markdown, nil
	case "adoc", "asciidoc":
		return AsciiDoc, nil
	default:
		return 0, ErrUnsupportedDialect{Dialect: token}
	}
}

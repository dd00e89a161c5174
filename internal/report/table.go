package report

import (
	"fmt"
	"io"
)

const markdownDelimiter = "|:------------------------|--------------------------:|"

// tableWriter emits section headers and two-column tables in one dialect.
// The first write error is kept and every later call is a no-op.
type tableWriter struct {
	w       io.Writer
	dialect Dialect
	err     error
}

func newTableWriter(w io.Writer, dialect Dialect) *tableWriter {
	return &tableWriter{
		w:       w,
		dialect: dialect,
	}
}

func (t *tableWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}

	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *tableWriter) section(title string) {
	if t.dialect == AsciiDoc {
		t.printf("==== %s ====\n\n", title)

		return
	}

	t.printf("### %s\n\n", title)
}

func (t *tableWriter) open(left, right string) {
	if t.dialect == AsciiDoc {
		t.printf("|===\n")
		t.row(left, right)

		return
	}

	t.row(left, right)
	t.printf("%s\n", markdownDelimiter)
}

func (t *tableWriter) row(left, right string) {
	if t.dialect == AsciiDoc {
		t.printf("| %s | %s \n", left, right)

		return
	}

	t.printf("| %s | %s |\n", left, right)
}

func (t *tableWriter) close() {
	if t.dialect == AsciiDoc {
		t.printf("|===\n\n")

		return
	}

	t.printf("\n")
}

package parser

import (
	"bufio"
	"bytes"
	"errors"
)

// line is one raw line of a source, numbered from 1. A line longer than the
// read buffer is dropped and only flagged as tooLong.
type line struct {
	source  string
	text    string
	number  int
	tooLong bool
}

func newLine(source, text string, number int, tooLong bool) line {
	return line{
		source:  source,
		text:    text,
		number:  number,
		tooLong: tooLong,
	}
}

// readLine returns the next line without its line ending. When the line does
// not fit into the reader's buffer the rest of it is discarded and tooLong is
// set. At the end of input the last unterminated line comes with io.EOF.
func readLine(r *bufio.Reader) (text string, tooLong bool, err error) {
	buf, err := r.ReadSlice('\n')
	if !errors.Is(err, bufio.ErrBufferFull) {
		buf = bytes.TrimSuffix(buf, []byte("\n"))
		buf = bytes.TrimSuffix(buf, []byte("\r"))

		return string(buf), false, err
	}

	for errors.Is(err, bufio.ErrBufferFull) {
		_, err = r.ReadSlice('\n')
	}

	return "", true, err
}

package internal

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Line is a single numbered line of input text, without its terminator.
type Line struct {
	LineNo  int    // 1-based line number.
	Text    string // Line text, without "\n" or "\r\n".
	TooLong bool   // Set if the line exceeded the iterator limit.
}

// Lines returns an iterator over the lines of input.
//
// Lines are not truncated. If max is positive, lines longer than max bytes
// are yielded with TooLong set. A read error other than io.EOF is yielded
// once, with the line number it occurred on, and ends the sequence.
func Lines(input io.Reader, max int) iter.Seq2[Line, error] {
	return func(yield func(line Line, err error) bool) {
		reader := bufio.NewReader(input)

		var lineno int
		for {
			text, err := reader.ReadString('\n')
			if len(text) > 0 {
				lineno++
				text = strings.TrimSuffix(text, "\n")
				text = strings.TrimSuffix(text, "\r")
				line := Line{
					LineNo:  lineno,
					Text:    text,
					TooLong: max > 0 && len(text) > max,
				}
				if !yield(line, nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Line{LineNo: lineno + 1}, err)
				return
			}
		}
	}
}

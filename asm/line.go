package asm

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	OPERAND_DIGITS = 8        // Zero padded width of an assembled operand.
	OPERAND_MAX    = 99999999 // Largest operand that fits OPERAND_DIGITS.
)

// Trim removes leading and trailing white space from a line.
func Trim(line string) string {
	return strings.TrimSpace(line)
}

// Fields splits a line into at most n leading white space separated words.
// Any words past the n-th are ignored.
func Fields(line string, n int) (words []string) {
	words = strings.Fields(line)
	if len(words) > n {
		words = words[:n]
	}
	return
}

// Atoi converts text to an integer in the manner of C's atoi().
//
// Leading white space is skipped, an optional sign is accepted, and then as
// many decimal digits as are present are converted. Text with no leading
// digits converts to 0. Out of range values saturate to the 32-bit limits.
func Atoi(text string) int {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)

	negative := false
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		negative = text[0] == '-'
		text = text[1:]
	}

	var value int64
	for _, c := range []byte(text) {
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int64(c-'0')
		if value > math.MaxInt32+1 {
			value = math.MaxInt32 + 1
		}
	}

	if negative {
		value = -value
	}

	return int(max(min(value, math.MaxInt32), math.MinInt32))
}

// parseOperand converts an operand word, relaxed (see Atoi) or strict.
func parseOperand(word string, strict bool) (value int, err error) {
	if !strict {
		value = Atoi(word)
		return
	}

	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrOperandSyntax
		return
	}

	value = int(v64)
	return
}

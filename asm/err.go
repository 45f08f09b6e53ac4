package asm

import (
	"errors"
	"fmt"

	"github.com/ezrec/sscd/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrSinkUnavailable = errors.New(f("sink unavailable"))
	ErrSinkDirectory   = errors.New(f("is a directory"))

	// Line errors
	ErrMalformedLine   = errors.New(f("malformed line"))
	ErrUnknownMnemonic = errors.New(f("unknown mnemonic"))
	ErrUnknownOpcode   = errors.New(f("unknown opcode"))
	ErrLineTooLong     = errors.New(f("line too long"))

	// Operand errors, both reported as malformed lines.
	ErrOperandRange  = fmt.Errorf("%w: %v", ErrMalformedLine, f("operand out of range"))
	ErrOperandSyntax = fmt.Errorf("%w: %v", ErrMalformedLine, f("operand not a number"))
)

// ErrSink is returned when an input or output file cannot be opened.
// It matches both ErrSinkUnavailable and the underlying error.
type ErrSink struct {
	Path string
	Err  error
}

func (err *ErrSink) Error() string {
	return f("%v: %v: %v", ErrSinkUnavailable, err.Path, err.Err)
}

func (err *ErrSink) Unwrap() []error {
	return []error{ErrSinkUnavailable, err.Err}
}

// ErrLine locates an error on a line of input.
type ErrLine struct {
	LineNo int    // 1-based line number, 0 if unknown.
	Token  string // Offending token, if any.
	Err    error
}

func (err *ErrLine) Error() string {
	if len(err.Token) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Token, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

package isa

import (
	"errors"

	"github.com/ezrec/sscd/translate"
)

var f = translate.From

var (
	// Table construction errors
	ErrTableEmpty     = errors.New(f("instruction table empty"))
	ErrTableDuplicate = errors.New(f("instruction table duplicate"))
	ErrOpcodeShape    = errors.New(f("opcode shape"))
)

// ErrEntry locates a table construction error.
type ErrEntry struct {
	Index int
	Entry Instruction
	Err   error
}

func (err *ErrEntry) Error() string {
	return f("entry %d %v %v", err.Index, err.Entry, err.Err)
}

func (err *ErrEntry) Unwrap() error {
	return err.Err
}

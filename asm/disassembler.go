// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
)

// Disassembler translates opcode text into mnemonic text.
type Disassembler struct {
	Options
}

// NewDisassembler creates a new disassembler.
func NewDisassembler(opts ...Option) (dis *Disassembler) {
	dis = &Disassembler{}
	dis.apply(opts...)
	return
}

// Line disassembles a single line of "OPCODE OPERAND" text.
//
// A blank line returns an empty string and no error. Errors are *ErrLine.
func (dis *Disassembler) Line(text string) (out string, err error) {
	line := Trim(text)
	if len(line) == 0 {
		return
	}

	words := Fields(line, 2)
	if len(words) < 2 {
		err = &ErrLine{Err: ErrMalformedLine}
		return
	}

	opcode := words[0]
	mnemonic, ok := dis.table().Mnemonic(opcode)
	if !ok {
		err = &ErrLine{Token: opcode, Err: ErrUnknownOpcode}
		return
	}

	operand, err := parseOperand(words[1], dis.Strict)
	if err != nil {
		err = &ErrLine{Token: words[1], Err: err}
		return
	}

	out = fmt.Sprintf("%v %d", mnemonic, operand)

	return
}

// Translate disassembles every line of input to output.
func (dis *Disassembler) Translate(input io.Reader, output io.Writer) (report *Report, err error) {
	return dis.stream(DIRECTION_DISASSEMBLE, input, output, dis.Line)
}

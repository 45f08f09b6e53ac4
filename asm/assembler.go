// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
)

// Assembler translates mnemonic text into opcode text.
type Assembler struct {
	Options
}

// NewAssembler creates a new assembler.
func NewAssembler(opts ...Option) (asm *Assembler) {
	asm = &Assembler{}
	asm.apply(opts...)
	return
}

// Line assembles a single line of "MNEMONIC [OPERAND]" text.
//
// A blank line returns an empty string and no error. Errors are *ErrLine.
func (asm *Assembler) Line(text string) (out string, err error) {
	line := Trim(text)
	if len(line) == 0 {
		return
	}

	words := Fields(line, 2)
	if len(words) == 0 {
		err = &ErrLine{Err: ErrMalformedLine}
		return
	}

	table := asm.table()
	mnemonic := words[0]
	opcode, ok := table.Opcode(mnemonic)
	if !ok {
		err = &ErrLine{Token: mnemonic, Err: ErrUnknownMnemonic}
		return
	}

	// HALT takes no operand; whatever was supplied is ignored.
	var operand int
	if len(words) > 1 && !table.IsHalt(mnemonic) {
		operand, err = parseOperand(words[1], asm.Strict)
		if err != nil {
			err = &ErrLine{Token: words[1], Err: err}
			return
		}
		if operand < 0 || operand > OPERAND_MAX {
			err = &ErrLine{Token: words[1], Err: ErrOperandRange}
			return
		}
	}

	out = fmt.Sprintf("%v %0*d", opcode, OPERAND_DIGITS, operand)

	return
}

// Translate assembles every line of input to output.
func (asm *Assembler) Translate(input io.Reader, output io.Writer) (report *Report, err error) {
	return asm.stream(DIRECTION_ASSEMBLE, input, output, asm.Line)
}

package asm

import (
	"io"
	"os"
)

// translateFunc is the stream entry point of a translator.
type translateFunc func(input io.Reader, output io.Writer) (*Report, error)

// translateFile opens the input and output paths and runs translate.
//
// The input is opened first, so an unreadable input never creates or
// truncates the output. Open failures are *ErrSink, and the report is
// returned with Completed unset.
func translateFile(dir Direction, input, output string, translate translateFunc) (report *Report, err error) {
	aborted := &Report{Direction: dir, Input: input, Output: output}

	inf, err := os.Open(input)
	if err != nil {
		return aborted, &ErrSink{Path: input, Err: err}
	}
	defer inf.Close()

	info, err := inf.Stat()
	if err != nil {
		return aborted, &ErrSink{Path: input, Err: err}
	}
	if info.IsDir() {
		return aborted, &ErrSink{Path: input, Err: ErrSinkDirectory}
	}

	ouf, err := os.Create(output)
	if err != nil {
		return aborted, &ErrSink{Path: output, Err: err}
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil && cerr != nil {
			err = cerr
			report.Completed = false
		}
	}()

	report, err = translate(inf, ouf)
	report.Input = input
	report.Output = output

	return
}

// AssembleFile assembles the input path into the output path.
func AssembleFile(input, output string, opts ...Option) (report *Report, err error) {
	asm := NewAssembler(opts...)
	return translateFile(DIRECTION_ASSEMBLE, input, output, asm.Translate)
}

// DisassembleFile disassembles the input path into the output path.
func DisassembleFile(input, output string, opts ...Option) (report *Report, err error) {
	dis := NewDisassembler(opts...)
	return translateFile(DIRECTION_DISASSEMBLE, input, output, dis.Translate)
}

package asm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/ezrec/sscd/internal"
	"github.com/ezrec/sscd/isa"
)

// Options are the settings shared by the Assembler and the Disassembler.
type Options struct {
	Table   *isa.Table // Instruction table. If nil, isa.Default is used.
	Strict  bool       // If set, operands must be well formed decimal integers.
	MaxLine int        // If positive, longer lines are skipped as LineTooLong.
	Verbose bool       // If set, verbosely logs the translator actions.
}

// Option modifies Options.
type Option func(opts *Options)

// WithTable selects the instruction table.
func WithTable(table *isa.Table) Option {
	return func(opts *Options) { opts.Table = table }
}

// WithStrict selects strict operand parsing.
func WithStrict(strict bool) Option {
	return func(opts *Options) { opts.Strict = strict }
}

// WithMaxLine sets the longest accepted line, in bytes.
func WithMaxLine(max int) Option {
	return func(opts *Options) { opts.MaxLine = max }
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(opts *Options) { opts.Verbose = verbose }
}

func (opts *Options) apply(options ...Option) {
	for _, option := range options {
		option(opts)
	}
}

func (opts *Options) table() *isa.Table {
	if opts.Table == nil {
		return isa.Default
	}
	return opts.Table
}

// lineFunc translates a single line of text.
type lineFunc func(text string) (out string, err error)

// stream runs translate over every line of input, writing to output.
//
// Per-line errors become diagnostics. The returned error is set only if the
// input could not be read or the output could not be written.
func (opts *Options) stream(dir Direction, input io.Reader, output io.Writer, translate lineFunc) (report *Report, err error) {
	report = &Report{Direction: dir}
	writer := bufio.NewWriter(output)

	defer func() {
		ferr := writer.Flush()
		if err == nil {
			err = ferr
		}
		report.Completed = err == nil
	}()

	for line, rerr := range internal.Lines(input, opts.MaxLine) {
		if rerr != nil {
			err = &ErrLine{LineNo: line.LineNo, Err: rerr}
			return
		}

		report.Lines = line.LineNo

		if opts.Verbose {
			glog.Infof("%v: %v: %v", dir, line.LineNo, line.Text)
		}

		if len(Trim(line.Text)) == 0 {
			report.Blank++
			continue
		}

		var out string
		var lerr error
		if line.TooLong {
			lerr = ErrLineTooLong
		} else {
			out, lerr = translate(line.Text)
		}

		if lerr != nil {
			diag := report.add(line.LineNo, lerr)
			if opts.Verbose {
				glog.Warningf("%v: %v", dir, diag.Err)
			}
			continue
		}

		_, err = fmt.Fprintln(writer, out)
		if err != nil {
			return
		}
		report.Emitted++
	}

	return
}

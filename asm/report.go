package asm

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Direction is the direction of a translation.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIRECTION_ASSEMBLE    = Direction(0) // assemble
	DIRECTION_DISASSEMBLE = Direction(1) // disassemble
)

// MarshalYAML encodes the direction by name.
func (dir Direction) MarshalYAML() (any, error) {
	return dir.String(), nil
}

// Kind classifies a skipped line.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_MALFORMED_LINE   = Kind(0) // MalformedLine
	KIND_UNKNOWN_MNEMONIC = Kind(1) // UnknownMnemonic
	KIND_UNKNOWN_OPCODE   = Kind(2) // UnknownOpcode
	KIND_LINE_TOO_LONG    = Kind(3) // LineTooLong
)

// MarshalYAML encodes the kind by name.
func (kind Kind) MarshalYAML() (any, error) {
	return kind.String(), nil
}

// kindOf classifies a line error.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrUnknownMnemonic):
		return KIND_UNKNOWN_MNEMONIC
	case errors.Is(err, ErrUnknownOpcode):
		return KIND_UNKNOWN_OPCODE
	case errors.Is(err, ErrLineTooLong):
		return KIND_LINE_TOO_LONG
	default:
		return KIND_MALFORMED_LINE
	}
}

// Diagnostic describes a line that was skipped.
type Diagnostic struct {
	LineNo  int    `yaml:"line"`
	Kind    Kind   `yaml:"kind"`
	Token   string `yaml:"token,omitempty"`
	Message string `yaml:"message"`
	Err     error  `yaml:"-"`
}

// message formats a diagnostic in the user facing wording.
func (dir Direction) message(lineno int, err *ErrLine) string {
	switch {
	case errors.Is(err, ErrLineTooLong):
		return f("Error: Line too long at line %d.", lineno)
	case errors.Is(err, ErrOperandRange), errors.Is(err, ErrOperandSyntax):
		return f("Error: Invalid operand '%v' at line %d.", err.Token, lineno)
	case errors.Is(err, ErrUnknownMnemonic):
		return f("Error: Invalid mnemonic '%v' at line %d.", err.Token, lineno)
	case errors.Is(err, ErrUnknownOpcode):
		return f("Error: Invalid opcode '%v' at line %d.", err.Token, lineno)
	case dir == DIRECTION_DISASSEMBLE:
		return f("Error: Invalid machine code format at line %d.", lineno)
	default:
		return f("Error: Invalid line format at line %d.", lineno)
	}
}

// Report is the outcome of a translation pass.
type Report struct {
	Direction   Direction    `yaml:"direction"`
	Input       string       `yaml:"input,omitempty"`
	Output      string       `yaml:"output,omitempty"`
	Completed   bool         `yaml:"completed"` // False if the pass was aborted.
	Lines       int          `yaml:"lines"`     // Lines read.
	Blank       int          `yaml:"blank"`     // Blank lines skipped.
	Emitted     int          `yaml:"emitted"`   // Lines written.
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty"`
}

// Skipped returns the number of lines skipped with a diagnostic.
func (report *Report) Skipped() int {
	return len(report.Diagnostics)
}

// Err joins the errors of all diagnostics, or returns nil if there are none.
func (report *Report) Err() error {
	errs := make([]error, 0, len(report.Diagnostics))
	for _, diag := range report.Diagnostics {
		errs = append(errs, diag.Err)
	}
	return errors.Join(errs...)
}

// Notice returns the final completion notice for the pass.
func (report *Report) Notice() string {
	switch {
	case !report.Completed:
		return f("Error: Unable to open file.")
	case report.Direction == DIRECTION_DISASSEMBLE:
		return f("Machine Code to Assembly conversion complete.")
	default:
		return f("Assembly to Machine Code conversion complete.")
	}
}

// WriteYAML writes the report as a YAML document.
func (report *Report) WriteYAML(w io.Writer) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err = enc.Encode(report)
	if err != nil {
		return
	}
	err = enc.Close()
	return
}

// add records a line error as a diagnostic.
func (report *Report) add(lineno int, err error) (diag Diagnostic) {
	var line *ErrLine
	if !errors.As(err, &line) {
		line = &ErrLine{Err: err}
	}
	line.LineNo = lineno

	diag = Diagnostic{
		LineNo:  lineno,
		Kind:    kindOf(line),
		Token:   line.Token,
		Message: report.Direction.message(lineno, line),
		Err:     line,
	}
	report.Diagnostics = append(report.Diagnostics, diag)

	return
}

// Package shell is the interactive front end of sscd.
//
// Menu presents the original operation menu: assemble, disassemble or exit.
// The translation itself is delegated to a Translator, normally an Engine.
package shell

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/glog"

	"github.com/ezrec/sscd/asm"
	"github.com/ezrec/sscd/config"
	"github.com/ezrec/sscd/translate"
)

//go:generate go tool mockgen -write_package_comment=false -package=shell_test -destination=mock_translator_test.go github.com/ezrec/sscd/shell Translator

// Translator translates an input file into an output file.
type Translator interface {
	Assemble(input, output string) (*asm.Report, error)
	Disassemble(input, output string) (*asm.Report, error)
}

// Engine is a Translator using the asm package.
type Engine struct {
	Options []asm.Option
}

// Assemble implements Translator.
func (eng *Engine) Assemble(input, output string) (*asm.Report, error) {
	return asm.AssembleFile(input, output, eng.Options...)
}

// Disassemble implements Translator.
func (eng *Engine) Disassemble(input, output string) (*asm.Report, error) {
	return asm.DisassembleFile(input, output, eng.Options...)
}

// Menu choices.
const (
	CHOICE_ASSEMBLE    = 1
	CHOICE_DISASSEMBLE = 2
	CHOICE_EXIT        = 3
)

// Menu is the interactive operation loop.
type Menu struct {
	Translator Translator     // Runs the translations.
	Config     *config.Config // Output paths and verbosity.
	Input      io.Reader      // User input.
	Output     io.Writer      // Prompts and reports.

	reader *bufio.Reader
}

// Run prompts for operations until the user exits or the input ends.
func (menu *Menu) Run() (err error) {
	menu.reader = bufio.NewReader(menu.Input)
	out := menu.Output

	for {
		translate.Fprintf(out, "\nSelect an operation:\n")
		translate.Fprintf(out, "1. Assemble (Assembly to Machine Code)\n")
		translate.Fprintf(out, "2. Disassemble (Machine Code to Assembly)\n")
		translate.Fprintf(out, "3. Exit\n")
		translate.Fprintf(out, "Enter your choice: ")

		var word string
		word, err = menu.word()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return
		}

		choice, cerr := strconv.Atoi(word)
		if cerr != nil {
			translate.Fprintf(out, "Invalid input. Please enter a number.\n")
			err = menu.skipLine()
			if err != nil && !errors.Is(err, io.EOF) {
				return
			}
			continue
		}

		var dir asm.Direction
		switch choice {
		case CHOICE_EXIT:
			translate.Fprintf(out, "Exiting...\n")
			return nil
		case CHOICE_ASSEMBLE:
			dir = asm.DIRECTION_ASSEMBLE
		case CHOICE_DISASSEMBLE:
			dir = asm.DIRECTION_DISASSEMBLE
		default:
			translate.Fprintf(out, "Invalid choice. Try again.\n")
			continue
		}

		translate.Fprintf(out, "Enter input file name: ")
		var input string
		input, err = menu.word()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return
		}

		menu.run(dir, input)
	}

	translate.Fprintf(out, "Exiting...\n")
	return nil
}

// run performs one translation and prints its diagnostics and notice.
func (menu *Menu) run(dir asm.Direction, input string) {
	output := menu.Config.Output(dir)

	var report *asm.Report
	var err error
	switch dir {
	case asm.DIRECTION_DISASSEMBLE:
		report, err = menu.Translator.Disassemble(input, output)
	default:
		report, err = menu.Translator.Assemble(input, output)
	}

	if err != nil {
		glog.Warningf("%v: %v", dir, err)
	}
	if report == nil {
		report = &asm.Report{Direction: dir}
	}

	WriteReport(menu.Output, report)
	if menu.Config.Verbose && report.Completed {
		RenderReport(menu.Output, report)
	}
}

// WriteReport prints each diagnostic message followed by the completion notice.
func WriteReport(w io.Writer, report *asm.Report) {
	for _, diag := range report.Diagnostics {
		io.WriteString(w, diag.Message+"\n")
	}
	io.WriteString(w, report.Notice()+"\n")
}

// word reads the next white space delimited word.
func (menu *Menu) word() (word string, err error) {
	var c rune
	for {
		c, _, err = menu.reader.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(c) {
			break
		}
	}

	var sb strings.Builder
	sb.WriteRune(c)
	for {
		c, _, err = menu.reader.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}
		if unicode.IsSpace(c) {
			err = menu.reader.UnreadRune()
			break
		}
		sb.WriteRune(c)
	}

	word = sb.String()
	return
}

// skipLine discards the remainder of the current input line.
func (menu *Menu) skipLine() (err error) {
	_, err = menu.reader.ReadString('\n')
	return
}

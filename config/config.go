// Package config holds the settings of the sscd driver.
//
// Settings may be overridden by a Starlark file of top level assignments:
//
//	assemble_output = "out/" + "machine.txt"
//	disassemble_output = "out/assembly.txt"
//	max_line = 2 * DEFAULT_MAX_LINE
//	strict = True
//	verbose = False
//
// The DEFAULT_* names are predeclared with the built in defaults.
package config

import (
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sscd/asm"
)

const (
	DEFAULT_ASSEMBLE_OUTPUT    = "machine_output.txt"  // Output of an assemble pass.
	DEFAULT_DISASSEMBLE_OUTPUT = "assembly_output.txt" // Output of a disassemble pass.
	DEFAULT_MAX_LINE           = 4096                  // Longest accepted line, in bytes.
)

// Config is the driver configuration.
type Config struct {
	AssembleOutput    string // Output path for assembly.
	DisassembleOutput string // Output path for disassembly.
	MaxLine           int    // Longest accepted line; 0 for no limit.
	Strict            bool   // Strict operand parsing.
	Verbose           bool   // Verbose logging.
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		AssembleOutput:    DEFAULT_ASSEMBLE_OUTPUT,
		DisassembleOutput: DEFAULT_DISASSEMBLE_OUTPUT,
		MaxLine:           DEFAULT_MAX_LINE,
	}
}

// Options returns the translator options of the configuration.
func (cfg *Config) Options() []asm.Option {
	return []asm.Option{
		asm.WithStrict(cfg.Strict),
		asm.WithMaxLine(cfg.MaxLine),
		asm.WithVerbose(cfg.Verbose),
	}
}

// Output returns the configured output path for a direction.
func (cfg *Config) Output(dir asm.Direction) string {
	if dir == asm.DIRECTION_DISASSEMBLE {
		return cfg.DisassembleOutput
	}
	return cfg.AssembleOutput
}

// Load reads a Starlark configuration file over the defaults.
func Load(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	return Parse(path, src)
}

// Parse evaluates Starlark configuration source over the defaults.
func Parse(filename string, src []byte) (cfg *Config, err error) {
	cfg = Default()

	thread := &starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DEFAULT_ASSEMBLE_OUTPUT":    starlark.String(DEFAULT_ASSEMBLE_OUTPUT),
		"DEFAULT_DISASSEMBLE_OUTPUT": starlark.String(DEFAULT_DISASSEMBLE_OUTPUT),
		"DEFAULT_MAX_LINE":           starlark.MakeInt(DEFAULT_MAX_LINE),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		err = &ErrConfig{Path: filename, Err: err}
		return
	}

	for _, setting := range []struct {
		name string
		set  func(value starlark.Value) error
	}{
		{"assemble_output", stringSetter(&cfg.AssembleOutput)},
		{"disassemble_output", stringSetter(&cfg.DisassembleOutput)},
		{"max_line", intSetter(&cfg.MaxLine)},
		{"strict", boolSetter(&cfg.Strict)},
		{"verbose", boolSetter(&cfg.Verbose)},
	} {
		value, ok := globals[setting.name]
		if !ok {
			continue
		}
		err = setting.set(value)
		if err != nil {
			err = &ErrConfig{Path: filename, Name: setting.name, Err: err}
			return
		}
	}

	return
}

func stringSetter(field *string) func(starlark.Value) error {
	return func(value starlark.Value) error {
		str, ok := starlark.AsString(value)
		if !ok {
			return ErrConfigType
		}
		if len(str) == 0 {
			return ErrConfigValue
		}
		*field = str
		return nil
	}
}

func intSetter(field *int) func(starlark.Value) error {
	return func(value starlark.Value) error {
		num, ok := value.(starlark.Int)
		if !ok {
			return ErrConfigType
		}
		i64, ok := num.Int64()
		if !ok || i64 < 0 || i64 > int64(^uint32(0)>>1) {
			return ErrConfigValue
		}
		*field = int(i64)
		return nil
	}
}

func boolSetter(field *bool) func(starlark.Value) error {
	return func(value starlark.Value) error {
		b, ok := value.(starlark.Bool)
		if !ok {
			return ErrConfigType
		}
		*field = bool(b)
		return nil
	}
}

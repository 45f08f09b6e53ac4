// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/sscd/asm"
	"github.com/ezrec/sscd/config"
	"github.com/ezrec/sscd/isa"
	"github.com/ezrec/sscd/shell"
)

type settings struct {
	config  string
	output  string
	report  string
	strict  bool
	maxLine int
	verbose bool
	summary bool
	dump    bool
}

func main() {
	atexit.Register(glog.Flush)

	err := newRootCommand().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func newRootCommand() *cobra.Command {
	var set settings

	root := &cobra.Command{
		Use:          "sscd",
		Short:        "Assemble and disassemble sscd machine code text",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog reads its settings from the Go flag set.
			flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, &set)
		},
	}

	flag.Set("logtostderr", "true")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	pf := root.PersistentFlags()
	pf.StringVar(&set.config, "config", "", "Starlark configuration file")
	pf.BoolVar(&set.strict, "strict", false, "Reject operands that are not decimal integers")
	pf.IntVar(&set.maxLine, "max-line", config.DEFAULT_MAX_LINE, "Longest accepted input line, 0 for no limit")
	pf.BoolVar(&set.verbose, "verbose", false, "Log each translated line")

	root.AddCommand(
		newTranslateCommand(&set, asm.DIRECTION_ASSEMBLE),
		newTranslateCommand(&set, asm.DIRECTION_DISASSEMBLE),
		&cobra.Command{
			Use:   "menu",
			Short: "Run the interactive operation menu",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMenu(cmd, &set)
			},
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print the instruction table",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				shell.RenderTable(cmd.OutOrStdout(), isa.Default)
			},
		},
	)

	return root
}

func newTranslateCommand(set *settings, dir asm.Direction) *cobra.Command {
	cmd := &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, set, dir, args[0])
		},
	}

	switch dir {
	case asm.DIRECTION_DISASSEMBLE:
		cmd.Use = "disasm INPUT"
		cmd.Aliases = []string{"disassemble"}
		cmd.Short = "Translate machine code text into assembly text"
	default:
		cmd.Use = "asm INPUT"
		cmd.Aliases = []string{"assemble"}
		cmd.Short = "Translate assembly text into machine code text"
	}

	flags := cmd.Flags()
	flags.StringVarP(&set.output, "output", "o", "", "Output file (default from configuration)")
	flags.StringVar(&set.report, "report", "", "Write a YAML report to this file")
	flags.BoolVar(&set.summary, "summary", false, "Print a summary table")
	flags.BoolVar(&set.dump, "dump", false, "Pretty print the report")

	return cmd
}

// loadConfig reads the configuration file, then applies explicit flags.
func loadConfig(cmd *cobra.Command, set *settings) (cfg *config.Config, err error) {
	cfg = config.Default()
	if len(set.config) != 0 {
		cfg, err = config.Load(set.config)
		if err != nil {
			return
		}
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = set.strict
	}
	if flags.Changed("max-line") {
		cfg.MaxLine = set.maxLine
	}
	if flags.Changed("verbose") {
		cfg.Verbose = set.verbose
	}

	return
}

func runTranslate(cmd *cobra.Command, set *settings, dir asm.Direction, input string) (err error) {
	cfg, err := loadConfig(cmd, set)
	if err != nil {
		return
	}

	output := set.output
	if len(output) == 0 {
		output = cfg.Output(dir)
	}

	engine := &shell.Engine{Options: cfg.Options()}

	var report *asm.Report
	switch dir {
	case asm.DIRECTION_DISASSEMBLE:
		report, err = engine.Disassemble(input, output)
	default:
		report, err = engine.Assemble(input, output)
	}

	stdout := cmd.OutOrStdout()
	shell.WriteReport(stdout, report)

	if set.summary {
		shell.RenderReport(stdout, report)
	}

	if set.dump {
		pp.Fprintln(stdout, report)
	}

	if len(set.report) != 0 {
		rerr := writeReport(set.report, report)
		if err == nil {
			err = rerr
		}
	}

	return
}

func writeReport(path string, report *asm.Report) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = report.WriteYAML(ouf)
	return
}

func runMenu(cmd *cobra.Command, set *settings) (err error) {
	cfg, err := loadConfig(cmd, set)
	if err != nil {
		return
	}

	menu := &shell.Menu{
		Translator: &shell.Engine{Options: cfg.Options()},
		Config:     cfg,
		Input:      cmd.InOrStdin(),
		Output:     cmd.OutOrStdout(),
	}

	return menu.Run()
}

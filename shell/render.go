package shell

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/sscd/asm"
	"github.com/ezrec/sscd/isa"
	"github.com/ezrec/sscd/translate"
)

var f = translate.From

// RenderTable writes the instruction table.
func RenderTable(w io.Writer, instructions *isa.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{f("Mnemonic"), f("Opcode")})
	for name, op := range instructions.All() {
		tw.AppendRow(table.Row{name, string(op)})
	}
	tw.Render()
}

// RenderReport writes a summary of a translation pass, and a table of its
// diagnostics if there are any.
func RenderReport(w io.Writer, report *asm.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(report.Direction.String())
	tw.AppendRows([]table.Row{
		{f("Input"), report.Input},
		{f("Output"), report.Output},
		{f("Lines"), report.Lines},
		{f("Blank"), report.Blank},
		{f("Emitted"), report.Emitted},
		{f("Skipped"), report.Skipped()},
	})
	tw.Render()

	if len(report.Diagnostics) == 0 {
		return
	}

	dw := table.NewWriter()
	dw.SetOutputMirror(w)
	dw.SetStyle(table.StyleLight)
	dw.AppendHeader(table.Row{f("Line"), f("Kind"), f("Token"), f("Message")})
	for _, diag := range report.Diagnostics {
		dw.AppendRow(table.Row{diag.LineNo, diag.Kind.String(), diag.Token, diag.Message})
	}
	dw.Render()
}

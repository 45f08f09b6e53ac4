package shell_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/sscd/asm"
	"github.com/ezrec/sscd/isa"
	"github.com/ezrec/sscd/shell"
)

var _ = Describe("Render", func() {
	It("should render the instruction table", func() {
		out := &bytes.Buffer{}
		shell.RenderTable(out, isa.Default)

		text := out.String()
		for name, op := range isa.Default.All() {
			Expect(text).To(MatchRegexp(`%v\s+│\s+%v`, name, op))
		}
		Expect(strings.Index(text, "HALT")).To(BeNumerically("<", strings.Index(text, "DIV")))
	})

	It("should render a report with diagnostics", func() {
		report, err := asm.NewAssembler().Translate(
			strings.NewReader("LOAD 1\nJMP 2\n"), &bytes.Buffer{})
		Expect(err).NotTo(HaveOccurred())

		out := &bytes.Buffer{}
		shell.RenderReport(out, report)

		text := out.String()
		Expect(text).To(ContainSubstring("assemble"))
		Expect(text).To(ContainSubstring("UnknownMnemonic"))
		Expect(text).To(ContainSubstring("Error: Invalid mnemonic 'JMP' at line 2."))
	})

	It("should write diagnostics before the notice", func() {
		report := &asm.Report{
			Direction: asm.DIRECTION_DISASSEMBLE,
			Completed: true,
			Diagnostics: []asm.Diagnostic{
				{LineNo: 1, Message: "Error: Invalid opcode '111' at line 1."},
			},
		}

		out := &bytes.Buffer{}
		shell.WriteReport(out, report)
		Expect(out.String()).To(Equal(
			"Error: Invalid opcode '111' at line 1.\n" +
				"Machine Code to Assembly conversion complete.\n"))
	})
})

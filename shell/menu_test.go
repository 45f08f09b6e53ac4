package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/sscd/asm"
	"github.com/ezrec/sscd/config"
	"github.com/ezrec/sscd/shell"
)

var _ = Describe("Menu", func() {
	var (
		mockCtrl   *gomock.Controller
		translator *MockTranslator
		output     *bytes.Buffer
		menu       *shell.Menu
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		translator = NewMockTranslator(mockCtrl)
		output = &bytes.Buffer{}
		menu = &shell.Menu{
			Translator: translator,
			Config:     config.Default(),
			Output:     output,
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should exit on choice 3", func() {
		menu.Input = strings.NewReader("3\n")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(ContainSubstring("Select an operation:"))
		Expect(output.String()).To(ContainSubstring("Enter your choice: "))
		Expect(output.String()).To(HaveSuffix("Exiting...\n"))
	})

	It("should exit at the end of input", func() {
		menu.Input = strings.NewReader("")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(HaveSuffix("Exiting...\n"))
	})

	It("should assemble into the default output", func() {
		report := &asm.Report{
			Direction: asm.DIRECTION_ASSEMBLE,
			Completed: true,
			Diagnostics: []asm.Diagnostic{
				{LineNo: 2, Kind: asm.KIND_UNKNOWN_MNEMONIC, Token: "JMP",
					Message: "Error: Invalid mnemonic 'JMP' at line 2."},
			},
		}
		translator.EXPECT().
			Assemble("program.asm", config.DEFAULT_ASSEMBLE_OUTPUT).
			Return(report, nil)
		menu.Input = strings.NewReader("1\nprogram.asm\n3\n")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(ContainSubstring("Enter input file name: "))
		Expect(output.String()).To(ContainSubstring(
			"Error: Invalid mnemonic 'JMP' at line 2.\n" +
				"Assembly to Machine Code conversion complete.\n"))
	})

	It("should disassemble into the configured output", func() {
		menu.Config.DisassembleOutput = "listing.txt"
		translator.EXPECT().
			Disassemble("machine.txt", "listing.txt").
			Return(&asm.Report{Direction: asm.DIRECTION_DISASSEMBLE, Completed: true}, nil)
		menu.Input = strings.NewReader("2 machine.txt 3")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(ContainSubstring("Machine Code to Assembly conversion complete.\n"))
	})

	It("should report a file that cannot be opened", func() {
		translator.EXPECT().
			Assemble("missing.asm", gomock.Any()).
			Return(&asm.Report{Direction: asm.DIRECTION_ASSEMBLE},
				&asm.ErrSink{Path: "missing.asm", Err: os.ErrNotExist})
		menu.Input = strings.NewReader("1\nmissing.asm\n3\n")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(ContainSubstring("Error: Unable to open file.\n"))
		Expect(output.String()).NotTo(ContainSubstring("conversion complete"))
	})

	It("should reject input that is not a number", func() {
		menu.Input = strings.NewReader("abc def\n3\n")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(ContainSubstring("Invalid input. Please enter a number.\n"))
		Expect(strings.Count(output.String(), "Select an operation:")).To(Equal(2))
	})

	It("should reject an unknown choice", func() {
		menu.Input = strings.NewReader("9\n3\n")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(ContainSubstring("Invalid choice. Try again.\n"))
		Expect(output.String()).NotTo(ContainSubstring("Enter input file name"))
	})

	It("should stop when the file name is missing", func() {
		menu.Input = strings.NewReader("1\n")

		Expect(menu.Run()).To(Succeed())
		Expect(output.String()).To(HaveSuffix("Enter input file name: Exiting...\n"))
	})
})

var _ = Describe("Engine", func() {
	It("should translate files both ways", func() {
		dir := GinkgoT().TempDir()
		source := filepath.Join(dir, "program.asm")
		Expect(os.WriteFile(source, []byte("LOAD 7\nHALT 42\n"), 0o644)).To(Succeed())

		cfg := config.Default()
		cfg.AssembleOutput = filepath.Join(dir, "machine_output.txt")
		cfg.DisassembleOutput = filepath.Join(dir, "assembly_output.txt")

		output := &bytes.Buffer{}
		menu := &shell.Menu{
			Translator: &shell.Engine{Options: cfg.Options()},
			Config:     cfg,
			Input: strings.NewReader(
				"1\n" + source + "\n2\n" + cfg.AssembleOutput + "\n3\n"),
			Output: output,
		}

		Expect(menu.Run()).To(Succeed())

		machine, err := os.ReadFile(cfg.AssembleOutput)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(machine)).To(Equal("001 00000007\n000 00000000\n"))

		assembly, err := os.ReadFile(cfg.DisassembleOutput)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(assembly)).To(Equal("LOAD 7\nHALT 0\n"))
	})
})

// Package asm translates between the mnemonic text form and the opcode text
// form of the sscd instruction set.
//
// The Assembler reads lines of "MNEMONIC [OPERAND]" and writes lines of
// "OPCODE OPERAND8", where OPERAND8 is the operand zero padded to eight
// decimal digits. The Disassembler reads "OPCODE OPERAND" and writes
// "MNEMONIC OPERAND".
//
// Both translators stream line by line. A line that cannot be translated is
// recorded as a Diagnostic in the returned Report and the pass continues;
// only a failure to open the input or output aborts a file translation.
package asm

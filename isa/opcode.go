// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"iter"
	"slices"
)

// Mnemonic is an instruction name.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	MNEMONIC_HALT  = Mnemonic(0) // HALT
	MNEMONIC_LOAD  = Mnemonic(1) // LOAD
	MNEMONIC_STORE = Mnemonic(2) // STORE
	MNEMONIC_ADD   = Mnemonic(3) // ADD
	MNEMONIC_SUB   = Mnemonic(4) // SUB
	MNEMONIC_MUL   = Mnemonic(5) // MUL
	MNEMONIC_DIV   = Mnemonic(6) // DIV
)

// OPCODE_WIDTH is the number of symbols in an opcode.
const OPCODE_WIDTH = 3

// Opcode is the encoded form of a mnemonic.
type Opcode string

// Valid returns true if the opcode is OPCODE_WIDTH symbols of '0' or '1'.
func (op Opcode) Valid() bool {
	if len(op) != OPCODE_WIDTH {
		return false
	}

	for _, c := range []byte(op) {
		if c != '0' && c != '1' {
			return false
		}
	}

	return true
}

// Instruction pairs a mnemonic with its opcode.
type Instruction struct {
	Mnemonic Mnemonic
	Opcode   Opcode
}

func (in Instruction) String() string {
	return fmt.Sprintf("%v %v", in.Mnemonic, in.Opcode)
}

// Table is an ordered, immutable mnemonic to opcode bijection.
type Table struct {
	entries []Instruction
}

// Default is the canonical instruction table.
var Default = mustTable(
	Instruction{MNEMONIC_HALT, "000"},
	Instruction{MNEMONIC_LOAD, "001"},
	Instruction{MNEMONIC_STORE, "100"},
	Instruction{MNEMONIC_ADD, "011"},
	Instruction{MNEMONIC_SUB, "010"},
	Instruction{MNEMONIC_MUL, "101"},
	Instruction{MNEMONIC_DIV, "110"},
)

func mustTable(entries ...Instruction) *Table {
	table, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return table
}

// NewTable builds a table, checking that both mnemonics and opcodes are
// pairwise distinct and that every opcode is well formed.
func NewTable(entries ...Instruction) (table *Table, err error) {
	if len(entries) == 0 {
		err = ErrTableEmpty
		return
	}

	for n, entry := range entries {
		if !entry.Opcode.Valid() {
			err = &ErrEntry{Index: n, Entry: entry, Err: ErrOpcodeShape}
			return
		}
		for _, prior := range entries[:n] {
			if prior.Mnemonic == entry.Mnemonic || prior.Opcode == entry.Opcode {
				err = &ErrEntry{Index: n, Entry: entry, Err: ErrTableDuplicate}
				return
			}
		}
	}

	table = &Table{entries: slices.Clone(entries)}

	return
}

// Len returns the number of instructions in the table.
func (table *Table) Len() int {
	return len(table.entries)
}

// All iterates over the mnemonic names and opcodes in table order.
func (table *Table) All() iter.Seq2[string, Opcode] {
	return func(yield func(name string, op Opcode) bool) {
		for _, entry := range table.entries {
			if !yield(entry.Mnemonic.String(), entry.Opcode) {
				return
			}
		}
	}
}

// Instructions returns a copy of the table entries.
func (table *Table) Instructions() []Instruction {
	return slices.Clone(table.entries)
}

// Opcode returns the opcode for a mnemonic name.
// The match is exact and case sensitive.
func (table *Table) Opcode(name string) (op Opcode, ok bool) {
	for _, entry := range table.entries {
		if entry.Mnemonic.String() == name {
			return entry.Opcode, true
		}
	}

	return
}

// Mnemonic returns the mnemonic name for an opcode.
func (table *Table) Mnemonic(op string) (name string, ok bool) {
	for _, entry := range table.entries {
		if string(entry.Opcode) == op {
			return entry.Mnemonic.String(), true
		}
	}

	return
}

// IsHalt returns true if name is the halt instruction, which takes no operand.
func (table *Table) IsHalt(name string) bool {
	return name == MNEMONIC_HALT.String()
}

// Package isa defines the instruction table of the seven instruction toy
// machine handled by sscd.
//
// Every instruction has an upper case mnemonic and a three character opcode
// over the symbols 0 and 1. The mapping is a fixed bijection; the Default
// table is built once at program start and is never mutated, so it may be
// shared freely between goroutines.
package isa

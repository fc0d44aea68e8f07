package main

import (
	"fmt"

	"github.com/nimaid/fet80/instruction"
)

// disasmProgram prints one mnemonic line per decoded instruction
// record, in the order the records appear in the file (not sorted by
// ROM address), in the spirit of
// jmchacon-6502/disassemble's per-opcode formatting.
func disasmProgram(path string) error {
	records, err := loadRecords(path)
	if err != nil {
		return err
	}
	for _, r := range records {
		instr, err := instruction.Decode(r)
		if err != nil {
			return err
		}
		fmt.Printf("%4d: %s\n", instr.Address(), instr)
	}
	return nil
}

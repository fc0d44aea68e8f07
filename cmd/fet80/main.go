// Command fet80 is a headless driver for the FET-80 core: it loads a
// JSON-encoded instruction-record program (the schema an external
// assembler would emit, see instruction.Record) and either runs it to
// completion/error or disassembles it one line per record.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimaid/fet80/instruction"
)

func main() {
	var dataWidth, addrWidth uint
	var maxSteps int
	var dump bool

	root := &cobra.Command{
		Use:   "fet80",
		Short: "Headless driver for the FET-80 accumulator CPU core",
	}
	root.PersistentFlags().UintVar(&dataWidth, "data-width", 8, "ALU/register data width in bits")
	root.PersistentFlags().UintVar(&addrWidth, "addr-width", 8, "RAM/ROM address width in bits")

	runCmd := &cobra.Command{
		Use:   "run <program.json>",
		Short: "Load a program and step it to completion or error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0], dataWidth, addrWidth, maxSteps, dump)
		},
	}
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 100000, "abort after this many steps without a halt-equivalent NOP")
	runCmd.Flags().BoolVar(&dump, "dump", false, "spew the full machine state after the run")

	disasmCmd := &cobra.Command{
		Use:   "disasm <program.json>",
		Short: "Print one mnemonic line per decoded instruction record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return disasmProgram(args[0])
		},
	}

	root.AddCommand(runCmd, disasmCmd)

	if err := root.Execute(); err != nil {
		log.Fatalf("fet80: %v", err)
	}
}

func loadRecords(path string) ([]instruction.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open %q: %w", path, err)
	}
	defer f.Close()

	var records []instruction.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("can't parse %q: %w", path, err)
	}
	return records, nil
}

func decodeInstructions(path string) ([]instruction.Instruction, error) {
	records, err := loadRecords(path)
	if err != nil {
		return nil, err
	}
	instrs := make([]instruction.Instruction, 0, len(records))
	for _, r := range records {
		instr, err := instruction.Decode(r)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, instr)
	}
	return instrs, nil
}

package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/nimaid/fet80/interp"
	"github.com/nimaid/fet80/machine"
)

// runProgram loads the instruction records at path into a fresh
// Machine and steps it until a step leaves PC unchanged (a D-family
// NOP, the FET-80 halt-equivalent, see instruction.DirectiveInstr, or
// a jump to its own address), an error occurs, or maxSteps steps have
// run.
func runProgram(path string, dataWidth, addrWidth uint, maxSteps int, dump bool) error {
	instrs, err := decodeInstructions(path)
	if err != nil {
		return err
	}

	m := machine.New(dataWidth, addrWidth)
	m.LoadProgram(instrs)
	ip := interp.New(m)

	steps := 0
	lastPC := m.GetPC()
	for steps < maxSteps {
		instr, ferr := m.CurrentInstruction()
		if ferr != nil {
			return ferr
		}
		if err := ip.Step(); err != nil {
			return fmt.Errorf("step %d at PC=%d (%s): %w", steps, instr.Address(), instr, err)
		}
		steps++
		// A NOP that leaves PC unchanged is FET-80's halt-equivalent;
		// stop driving once the machine has reached quiescence.
		if m.GetPC() == lastPC {
			break
		}
		lastPC = m.GetPC()
	}

	printState(m, steps)
	if dump {
		spew.Dump(m)
	}
	return nil
}

func printState(m *machine.Machine, steps int) {
	a, _ := m.GetA()
	b, _ := m.GetB()
	acc, _ := m.GetACC()
	flags, _ := m.Flags()
	fmt.Printf("steps=%d PC=%d A=%d B=%d ACC=%d flags=%+v\n", steps, m.GetPC(), a, b, acc, flags)
}

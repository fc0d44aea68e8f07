// Package interp implements the FET-80 instruction interpreter: the
// dispatcher that fetches one instruction from a machine.Machine,
// applies its family's semantic effect, and updates the program
// counter. It is the adaptation of jmchacon-6502's cpu.Chip.Tick /
// processOpcode dispatch shape to FET-80's single-instruction-per-step
// model - there is no addressing-mode or multi-tick state machine
// here, since FET-80 instructions arrive already decoded.
package interp

import (
	"github.com/nimaid/fet80/alu"
	"github.com/nimaid/fet80/errs"
	"github.com/nimaid/fet80/instruction"
	"github.com/nimaid/fet80/machine"
)

// Interpreter executes one FET-80 instruction per Step() call against
// a bound Machine.
type Interpreter struct {
	m *machine.Machine
}

// New returns an Interpreter driving m.
func New(m *machine.Machine) *Interpreter {
	return &Interpreter{m: m}
}

// Step fetches the instruction at the current PC, applies its family's
// semantics, and advances PC (except for D, see instruction.DirectiveInstr).
// Ordering within a single Step is strictly sequential: fetch, resolve
// operands, apply side effects, update PC. If an error occurs mid-way,
// any side effects already applied remain visible - the caller decides
// whether to continue stepping a machine left in a failed state.
func (ip *Interpreter) Step() error {
	instr, err := ip.m.CurrentInstruction()
	if err != nil {
		return err
	}

	switch instr := instr.(type) {
	case instruction.TransferInstr:
		return ip.stepTransfer(instr)
	case instruction.MemInstr:
		return ip.stepMem(instr)
	case instruction.ComputeInstr:
		return ip.stepCompute(instr)
	case instruction.JumpInstr:
		return ip.stepJump(instr)
	case instruction.DirectiveInstr:
		return nil // NOP: no state change, no PC increment.
	default:
		return errs.IllegalInstruction{Address: instr.Address(), Reason: "unrecognized instruction variant"}
	}
}

func (ip *Interpreter) stepTransfer(t instruction.TransferInstr) error {
	v, err := ip.sourceValue(t.Address(), t.Src, t.Value)
	if err != nil {
		return err
	}
	if err := ip.destinationWrite(t.Address(), t.Dest, v); err != nil {
		return err
	}
	ip.m.IncrementPC()
	return nil
}

func (ip *Interpreter) stepMem(mem instruction.MemInstr) error {
	v, err := ip.sourceValue(mem.Address(), mem.Src, mem.Value)
	if err != nil {
		return err
	}
	ip.m.SetMAddress(v)
	ip.m.IncrementPC()
	return nil
}

func (ip *Interpreter) stepCompute(c instruction.ComputeInstr) error {
	x, err := ip.destinationRead(c.Address(), c.Dest)
	if err != nil {
		return err
	}
	y, err := ip.sourceValue(c.Address(), c.Src, c.Value)
	if err != nil {
		return err
	}
	if c.Op == alu.NAND {
		ip.m.Nand(x, y)
	} else {
		ip.m.Add(x, y, false) // carry-in is always false from an instruction stream.
	}
	acc, err := ip.m.GetACC()
	if err != nil {
		return err
	}
	if err := ip.destinationWrite(c.Address(), c.Dest, acc); err != nil {
		return err
	}
	ip.m.IncrementPC()
	return nil
}

func (ip *Interpreter) stepJump(j instruction.JumpInstr) error {
	jump, err := ip.jumpPredicate(j)
	if err != nil {
		return err
	}
	if jump {
		target, err := ip.sourceValue(j.Address(), j.Src, j.Value)
		if err != nil {
			return err
		}
		ip.m.SetPC(target)
		return nil
	}
	ip.m.IncrementPC()
	return nil
}

func (ip *Interpreter) jumpPredicate(j instruction.JumpInstr) (bool, error) {
	if j.Op == instruction.JMP {
		return true, nil
	}
	flags, err := ip.m.Flags()
	if err != nil {
		return false, err
	}
	switch j.Op {
	case instruction.JC:
		return flags.Cout, nil
	case instruction.JNC:
		return !flags.Cout, nil
	case instruction.JEQZ:
		return flags.Eqz, nil
	case instruction.JNEZ:
		return flags.Nez, nil
	case instruction.JGTZ:
		return flags.Gtz, nil
	case instruction.JLTZ:
		return flags.Ltz, nil
	case instruction.JGEZ:
		return flags.Gez, nil
	case instruction.JLEZ:
		return flags.Lez, nil
	default:
		return false, errs.IllegalInstruction{Address: j.Address(), Reason: "unknown jump predicate"}
	}
}

// sourceValue resolves the src field shared by T, M, C and J records:
// DV is the embedded literal, A/B read the named register, and M
// reads RAM at the current MAR.
func (ip *Interpreter) sourceValue(addr uint64, src instruction.Src, value uint64) (uint64, error) {
	switch src {
	case instruction.SrcDV:
		return value, nil
	case instruction.SrcA:
		return ip.m.GetA()
	case instruction.SrcB:
		return ip.m.GetB()
	case instruction.SrcM:
		return ip.m.GetM()
	default:
		return 0, errs.IllegalInstruction{Address: addr, Reason: "invalid src"}
	}
}

// destinationRead resolves a T/C dest field for reading.
func (ip *Interpreter) destinationRead(addr uint64, dest instruction.Dest) (uint64, error) {
	switch dest {
	case instruction.DestA:
		return ip.m.GetA()
	case instruction.DestB:
		return ip.m.GetB()
	case instruction.DestM:
		return ip.m.GetM()
	default:
		return 0, errs.IllegalInstruction{Address: addr, Reason: "invalid dest"}
	}
}

// destinationWrite resolves a T/C dest field for writing.
func (ip *Interpreter) destinationWrite(addr uint64, dest instruction.Dest, v uint64) error {
	switch dest {
	case instruction.DestA:
		ip.m.SetA(v)
		return nil
	case instruction.DestB:
		ip.m.SetB(v)
		return nil
	case instruction.DestM:
		return ip.m.SetM(v)
	default:
		return errs.IllegalInstruction{Address: addr, Reason: "invalid dest"}
	}
}

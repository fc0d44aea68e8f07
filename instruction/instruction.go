package instruction

import (
	"fmt"

	"github.com/nimaid/fet80/alu"
	"github.com/nimaid/fet80/errs"
)

// Instruction is the tagged-variant form the interpreter executes.
// Each concrete type below carries exactly the fields its family
// uses, so there is no "invalid field for this family" state
// representable once Decode has produced one.
type Instruction interface {
	// Address returns the ROM slot this instruction occupies.
	Address() uint64
	// String returns a one-line mnemonic rendering, in the spirit of
	// jmchacon-6502/disassemble's opcode formatting.
	String() string
}

// TransferInstr is a T-family MOV: dest <- source_value.
type TransferInstr struct {
	Addr  uint64
	Src   Src
	Value uint64 // meaningful only when Src == SrcDV
	Dest  Dest
}

// Address implements Instruction.
func (t TransferInstr) Address() uint64 { return t.Addr }

// String implements Instruction.
func (t TransferInstr) String() string {
	return fmt.Sprintf("MOV %s, %s", t.Dest, srcOperand(t.Src, t.Value))
}

// MemInstr is an M-family MEM: MAR <- source_value.
type MemInstr struct {
	Addr  uint64
	Src   Src
	Value uint64 // meaningful only when Src == SrcDV
}

// Address implements Instruction.
func (m MemInstr) Address() uint64 { return m.Addr }

// String implements Instruction.
func (m MemInstr) String() string {
	return fmt.Sprintf("MEM %s", srcOperand(m.Src, m.Value))
}

// ComputeInstr is a C-family ADD/NAND: dest <- ALU(dest, source_value).
type ComputeInstr struct {
	Addr  uint64
	Op    alu.Function
	Src   Src
	Value uint64 // meaningful only when Src == SrcDV
	Dest  Dest
}

// Address implements Instruction.
func (c ComputeInstr) Address() uint64 { return c.Addr }

// String implements Instruction.
func (c ComputeInstr) String() string {
	return fmt.Sprintf("%s %s, %s", c.Op, c.Dest, srcOperand(c.Src, c.Value))
}

// JumpOp identifies which predicate a J-family instruction tests.
type JumpOp int

// The nine jump predicates. JMP is unconditional.
const (
	JMP JumpOp = iota
	JC
	JNC
	JEQZ
	JNEZ
	JGTZ
	JLTZ
	JGEZ
	JLEZ
)

// String implements fmt.Stringer.
func (j JumpOp) String() string {
	switch j {
	case JMP:
		return "JMP"
	case JC:
		return "JC"
	case JNC:
		return "JNC"
	case JEQZ:
		return "JEQZ"
	case JNEZ:
		return "JNEZ"
	case JGTZ:
		return "JGTZ"
	case JLTZ:
		return "JLTZ"
	case JGEZ:
		return "JGEZ"
	case JLEZ:
		return "JLEZ"
	default:
		return fmt.Sprintf("JumpOp(%d)", int(j))
	}
}

// JumpInstr is a J-family conditional or unconditional jump.
type JumpInstr struct {
	Addr  uint64
	Op    JumpOp
	Src   Src
	Value uint64 // meaningful only when Src == SrcDV
}

// Address implements Instruction.
func (j JumpInstr) Address() uint64 { return j.Addr }

// String implements Instruction.
func (j JumpInstr) String() string {
	return fmt.Sprintf("%s %s", j.Op, srcOperand(j.Src, j.Value))
}

// DirectiveInstr is a D-family NOP. It carries no fields beyond its
// address: it has no operands and no side effects.
type DirectiveInstr struct {
	Addr uint64
}

// Address implements Instruction.
func (d DirectiveInstr) Address() uint64 { return d.Addr }

// String implements Instruction.
func (d DirectiveInstr) String() string {
	return "NOP"
}

func illegalOpcode(r Record) error {
	return errs.IllegalInstruction{Address: r.Address, Reason: fmt.Sprintf("unknown %s opcode %q", r.Type, r.Opcode)}
}

func srcOperand(src Src, value uint64) string {
	if src == SrcDV {
		return fmt.Sprintf("#%d", value)
	}
	return string(src)
}

// computeOp maps a Record's opcode to an alu.Function for the C
// family, or reports an IllegalInstruction for anything else.
func computeOp(r Record) (alu.Function, error) {
	switch r.Opcode {
	case OpADD:
		return alu.ADD, nil
	case OpNAND:
		return alu.NAND, nil
	default:
		return 0, illegalOpcode(r)
	}
}

// jumpOp maps a Record's opcode to a JumpOp for the J family, or
// reports an IllegalInstruction for anything else.
func jumpOp(r Record) (JumpOp, error) {
	switch r.Opcode {
	case OpJMP:
		return JMP, nil
	case OpJC:
		return JC, nil
	case OpJNC:
		return JNC, nil
	case OpJEQZ:
		return JEQZ, nil
	case OpJNEZ:
		return JNEZ, nil
	case OpJGTZ:
		return JGTZ, nil
	case OpJLTZ:
		return JLTZ, nil
	case OpJGEZ:
		return JGEZ, nil
	case OpJLEZ:
		return JLEZ, nil
	default:
		return 0, illegalOpcode(r)
	}
}

// Package instruction models the decoded instruction records produced
// by the (out of scope) FET-80 assembler, and the tagged-variant form
// the interpreter actually executes.
//
// Record is the open, family-agnostic schema described in spec §6.1 -
// it is what an assembler (or a JSON program file, see cmd/fet80)
// hands the core. Decode validates a Record against its family's
// rules and turns it into one of the five concrete Instruction types,
// eliminating the class of "invalid src/dest for this family" errors
// at the decode boundary instead of at every execution.
package instruction

import (
	"fmt"

	"github.com/nimaid/fet80/errs"
)

// Type identifies which of the five instruction families a Record
// belongs to.
type Type string

// The five FET-80 instruction families.
const (
	TypeT Type = "T" // transfer (MOV)
	TypeM Type = "M" // memory address (MEM)
	TypeC Type = "C" // compute (ADD, NAND)
	TypeJ Type = "J" // jump
	TypeD Type = "D" // directive (NOP)
)

// Src identifies where a C/M/T/J instruction's source operand comes
// from.
type Src string

// Valid Src values. Absent (empty string) is only valid for D.
const (
	SrcDV Src = "DV" // direct/immediate value
	SrcA  Src = "A"
	SrcB  Src = "B"
	SrcM  Src = "M"
)

// Dest identifies where a T/C instruction writes its result.
type Dest string

// Valid Dest values.
const (
	DestA Dest = "A"
	DestB Dest = "B"
	DestM Dest = "M"
)

// Opcode is the family-appropriate mnemonic for an instruction.
type Opcode string

// Opcodes by family. T has exactly one; D has exactly one.
const (
	OpMOV  Opcode = "MOV"
	OpMEM  Opcode = "MEM"
	OpADD  Opcode = "ADD"
	OpNAND Opcode = "NAND"
	OpJMP  Opcode = "JMP"
	OpJC   Opcode = "JC"
	OpJNC  Opcode = "JNC"
	OpJEQZ Opcode = "JEQZ"
	OpJNEZ Opcode = "JNEZ"
	OpJGTZ Opcode = "JGTZ"
	OpJLTZ Opcode = "JLTZ"
	OpJGEZ Opcode = "JGEZ"
	OpJLEZ Opcode = "JLEZ"
	OpNOP  Opcode = "NOP"
)

// Record is the raw, not-yet-validated instruction schema from
// spec §6.1. json tags match the field names an external assembler (or
// a hand-written JSON program file) would emit.
type Record struct {
	Address uint64 `json:"address"`
	Type    Type   `json:"type"`
	Opcode  Opcode `json:"opcode"`
	Src     Src    `json:"src,omitempty"`
	Dest    Dest   `json:"dest,omitempty"`
	Value   uint64 `json:"value,omitempty"`
}

func reason(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Decode validates r against its family's rules and returns the
// matching tagged Instruction. It never returns a partially valid
// Instruction: either every field the family needs is present and
// legal, or an IllegalInstruction error is returned naming r.Address.
func Decode(r Record) (Instruction, error) {
	switch r.Type {
	case TypeT:
		if r.Opcode != OpMOV {
			return nil, errs.IllegalInstruction{Address: r.Address, Reason: reason("unknown T opcode %q", r.Opcode)}
		}
		if err := validSrc(r); err != nil {
			return nil, err
		}
		if err := validDest(r); err != nil {
			return nil, err
		}
		return TransferInstr{Addr: r.Address, Src: r.Src, Value: r.Value, Dest: r.Dest}, nil

	case TypeM:
		if r.Opcode != OpMEM {
			return nil, errs.IllegalInstruction{Address: r.Address, Reason: reason("unknown M opcode %q", r.Opcode)}
		}
		if err := validSrc(r); err != nil {
			return nil, err
		}
		return MemInstr{Addr: r.Address, Src: r.Src, Value: r.Value}, nil

	case TypeC:
		op, err := computeOp(r)
		if err != nil {
			return nil, err
		}
		if err := validSrc(r); err != nil {
			return nil, err
		}
		if err := validDest(r); err != nil {
			return nil, err
		}
		return ComputeInstr{Addr: r.Address, Op: op, Src: r.Src, Value: r.Value, Dest: r.Dest}, nil

	case TypeJ:
		op, err := jumpOp(r)
		if err != nil {
			return nil, err
		}
		if err := validSrc(r); err != nil {
			return nil, err
		}
		return JumpInstr{Addr: r.Address, Op: op, Src: r.Src, Value: r.Value}, nil

	case TypeD:
		if r.Opcode != OpNOP {
			return nil, errs.IllegalInstruction{Address: r.Address, Reason: reason("unknown D opcode %q", r.Opcode)}
		}
		return DirectiveInstr{Addr: r.Address}, nil

	default:
		return nil, errs.IllegalInstruction{Address: r.Address, Reason: reason("unknown instruction type %q", r.Type)}
	}
}

func validSrc(r Record) error {
	switch r.Src {
	case SrcDV, SrcA, SrcB, SrcM:
		return nil
	default:
		return errs.IllegalInstruction{Address: r.Address, Reason: reason("invalid src %q", r.Src)}
	}
}

func validDest(r Record) error {
	switch r.Dest {
	case DestA, DestB, DestM:
		return nil
	default:
		return errs.IllegalInstruction{Address: r.Address, Reason: reason("invalid dest %q", r.Dest)}
	}
}

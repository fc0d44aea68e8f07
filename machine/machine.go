// Package machine composes the FET-80 hardware model: one ALU, one RAM
// bank, one program ROM, and the named registers A and B, all sized by
// a single pair of construction parameters (data width, address
// width). It is the adaptation of jmchacon-6502's cpu.Chip composition
// layer to FET-80's simpler, non-cycle-stepped register file.
//
// Ownership is strict and exclusive: a Machine owns its ALU, RAM, ROM
// and registers outright, and nothing outside this package mutates
// them directly.
package machine

import (
	"github.com/nimaid/fet80/alu"
	"github.com/nimaid/fet80/instruction"
	"github.com/nimaid/fet80/ram"
	"github.com/nimaid/fet80/register"
	"github.com/nimaid/fet80/rom"
)

// Machine is the complete FET-80 register/ALU/memory/ROM state.
type Machine struct {
	dataWidth uint
	addrWidth uint

	alu *alu.ALU
	ram *ram.RAM
	rom *rom.ROM
	a   *register.Register
	b   *register.Register
}

// New constructs a Machine with the given data and address widths. It
// is not yet programmed - load a program before stepping it.
func New(dataWidth, addrWidth uint) *Machine {
	return &Machine{
		dataWidth: dataWidth,
		addrWidth: addrWidth,
		alu:       alu.New(dataWidth),
		ram:       ram.New(dataWidth, addrWidth),
		rom:       rom.New(addrWidth),
		a:         register.New("A", dataWidth),
		b:         register.New("B", dataWidth),
	}
}

// DataWidth returns the configured data width in bits.
func (m *Machine) DataWidth() uint { return m.dataWidth }

// AddrWidth returns the configured address width in bits.
func (m *Machine) AddrWidth() uint { return m.addrWidth }

// LoadProgram clears ROM, places each instruction at its own address,
// and resets PC to zero. RAM, A, B and ALU state are left untouched -
// programs are expected to initialize any memory they read.
func (m *Machine) LoadProgram(instrs []instruction.Instruction) {
	m.rom.Load(instrs)
}

// SetA writes the A register.
func (m *Machine) SetA(v uint64) { m.a.Set(v) }

// GetA reads the A register.
func (m *Machine) GetA() (uint64, error) { return m.a.Get() }

// SetB writes the B register.
func (m *Machine) SetB(v uint64) { m.b.Set(v) }

// GetB reads the B register.
func (m *Machine) GetB() (uint64, error) { return m.b.Get() }

// SetMAddress loads the MAR (selecting which RAM cell M refers to).
func (m *Machine) SetMAddress(v uint64) { m.ram.SetAddress(v) }

// GetMAddress reads the current MAR value.
func (m *Machine) GetMAddress() (uint64, error) { return m.ram.Address() }

// SetM writes the RAM cell currently selected by the MAR.
func (m *Machine) SetM(v uint64) error { return m.ram.Write(v) }

// GetM reads the RAM cell currently selected by the MAR.
func (m *Machine) GetM() (uint64, error) { return m.ram.Read() }

// SetPC loads the program counter.
func (m *Machine) SetPC(v uint64) { m.rom.SetPC(v) }

// GetPC reads the program counter.
func (m *Machine) GetPC() uint64 { return m.rom.PC() }

// IncrementPC advances the program counter by one, wrapping modulo
// 2^AddrWidth.
func (m *Machine) IncrementPC() { m.rom.IncrementPC() }

// Add runs the ALU's ADD function over x and y with the given carry-in
// and latches the result into the accumulator.
func (m *Machine) Add(x, y uint64, cin bool) { m.alu.Compute(alu.ADD, x, y, cin) }

// Nand runs the ALU's NAND function over x and y and latches the
// result into the accumulator.
func (m *Machine) Nand(x, y uint64) { m.alu.Compute(alu.NAND, x, y, false) }

// GetACC reads the ALU's latched accumulator.
func (m *Machine) GetACC() (uint64, error) { return m.alu.Acc() }

// Flags returns the current ALU flag block, or FlagsUnavailable if no
// computation has run yet.
func (m *Machine) Flags() (alu.Flags, error) { return m.alu.FlagsBlock() }

// CurrentInstruction returns the instruction at the current PC, or
// IllegalInstruction if that ROM slot is empty.
func (m *Machine) CurrentInstruction() (instruction.Instruction, error) { return m.rom.Fetch() }

// RAMSnapshot returns the full contents of RAM, one entry per address.
func (m *Machine) RAMSnapshot() []ram.Cell { return m.ram.Snapshot() }

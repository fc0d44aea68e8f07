// Package alu implements the FET-80 arithmetic/logic unit: a
// two-function combinational unit (ADD, NAND) that always latches its
// result into an accumulator register and always derives a seven-bit
// flag block from that result.
//
// The carry flag is a special case, grounded directly in the
// hardware this emulates: the adder runs on every compute() call
// regardless of which function is selected, so cout always reflects
// the add performed during the current call, even when NAND was
// selected. See DESIGN.md for the alternative interpretation this
// module deliberately does not implement.
package alu

import (
	"fmt"

	"github.com/nimaid/fet80/errs"
	"github.com/nimaid/fet80/register"
)

// Function selects which of the ALU's two combinational outputs feeds
// the accumulator. The hardware's carry chain runs unconditionally;
// Function only multiplexes the data output.
type Function int

const (
	// ADD selects the adder's sum as the ALU output.
	ADD Function = iota
	// NAND selects the bitwise NAND as the ALU output.
	NAND
)

// String implements fmt.Stringer.
func (f Function) String() string {
	switch f {
	case ADD:
		return "ADD"
	case NAND:
		return "NAND"
	default:
		return fmt.Sprintf("Function(%d)", int(f))
	}
}

// Flags is the status block produced by every compute() call, derived
// from the computed output OUT and the add's carry-out.
type Flags struct {
	Cout bool // add's carry-out, regardless of selected function
	Eqz  bool // OUT == 0
	Nez  bool // !Eqz
	Ltz  bool // sign bit of OUT is set
	Gez  bool // !Ltz
	Lez  bool // Ltz || Eqz
	Gtz  bool // !Lez
}

// ALU is a two-function combinational unit with a latched accumulator
// and a flag block that is only valid after at least one compute().
type ALU struct {
	width     uint
	mask      uint64
	signBit   uint64
	acc       *register.Register
	flags     Flags
	haveFlags bool
}

// New returns an ALU operating on width-bit values.
func New(width uint) *ALU {
	var mask uint64
	if width >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << width) - 1
	}
	return &ALU{
		width:   width,
		mask:    mask,
		signBit: uint64(1) << (width - 1),
		acc:     register.New("ACC", width),
	}
}

// BitWidth returns the width this ALU operates on.
func (a *ALU) BitWidth() uint {
	return a.width
}

// Compute runs fn over X and Y (with optional carry-in), normalizing
// both operands modulo 2^width first. It always latches the selected
// output into the accumulator and always refreshes the flag block.
func (a *ALU) Compute(fn Function, x, y uint64, cin bool) {
	x &= a.mask
	y &= a.mask

	sumRaw := x + y
	if cin {
		sumRaw++
	}
	carry := sumRaw > a.mask
	sum := sumRaw & a.mask

	nandOut := (^(x & y)) & a.mask

	var out uint64
	switch fn {
	case NAND:
		out = nandOut
	default: // ADD
		out = sum
	}

	f := Flags{
		Cout: carry,
		Eqz:  out == 0,
	}
	f.Nez = !f.Eqz
	f.Ltz = out >= a.signBit
	f.Gez = !f.Ltz
	f.Lez = f.Ltz || f.Eqz
	f.Gtz = !f.Lez

	a.flags = f
	a.haveFlags = true
	a.acc.Set(out)
}

// Acc returns the latched accumulator value, or UninitializedRead if
// no compute() call has ever run.
func (a *ALU) Acc() (uint64, error) {
	return a.acc.Get()
}

// FlagsBlock returns the current flag block, or FlagsUnavailable if no
// compute() call has ever run.
func (a *ALU) FlagsBlock() (Flags, error) {
	if !a.haveFlags {
		return Flags{}, errs.FlagsUnavailable{}
	}
	return a.flags, nil
}

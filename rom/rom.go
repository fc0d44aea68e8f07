// Package rom implements the FET-80 program ROM: 2^A instruction slots
// plus the program counter register that addresses them. ROM is
// write-once per program load - there is no runtime self-modification.
package rom

import (
	"github.com/nimaid/fet80/errs"
	"github.com/nimaid/fet80/instruction"
	"github.com/nimaid/fet80/register"
)

// ROM holds 2^addrWidth instruction slots, each either empty (nil) or
// a decoded instruction, plus a PC register initialized to zero on
// construction and on every Load.
type ROM struct {
	addrWidth uint
	slots     []instruction.Instruction
	pc        *register.Register
}

// New returns an empty ROM of 2^addrWidth slots with PC at zero.
func New(addrWidth uint) *ROM {
	r := &ROM{
		addrWidth: addrWidth,
		slots:     make([]instruction.Instruction, uint64(1)<<addrWidth),
		pc:        register.New("PC", addrWidth),
	}
	r.pc.Set(0)
	return r
}

// Clear empties every slot. PC is untouched; Load resets it
// separately so callers that only want to wipe ROM (without the
// implicit PC reset bundled into a fresh program load) retain that
// option.
func (r *ROM) Clear() {
	for i := range r.slots {
		r.slots[i] = nil
	}
}

// Load clears the ROM, resets PC to zero, then places each
// instruction at its own Address(). Duplicate addresses overwrite
// (last write wins, in slice order). Addresses with no matching
// instruction remain empty.
func (r *ROM) Load(instrs []instruction.Instruction) {
	r.Clear()
	r.pc.Set(0)
	for _, instr := range instrs {
		r.slots[instr.Address()] = instr
	}
}

// SetPC loads the program counter with v mod 2^addrWidth.
func (r *ROM) SetPC(v uint64) {
	r.pc.Set(v)
}

// IncrementPC advances the program counter by one, wrapping modulo
// 2^addrWidth.
func (r *ROM) IncrementPC() {
	// PC is always written (New sets it to zero), so this Get cannot fail.
	cur, _ := r.pc.Get()
	r.pc.Set(cur + 1)
}

// PC returns the current program counter value.
func (r *ROM) PC() uint64 {
	cur, _ := r.pc.Get()
	return cur
}

// Fetch returns the instruction at the current PC, or
// IllegalInstruction if that slot is empty.
func (r *ROM) Fetch() (instruction.Instruction, error) {
	addr := r.PC()
	instr := r.slots[addr]
	if instr == nil {
		return nil, errs.IllegalInstruction{Address: addr, Reason: "empty ROM slot"}
	}
	return instr, nil
}

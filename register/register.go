// Package register implements a single word-sized storage cell with
// write-tracking, the smallest building block of the FET-80 machine:
// the A/B registers, the MAR, the PC and the ALU's accumulator are all
// one of these, parametrized by width.
package register

import "github.com/nimaid/fet80/errs"

// Register holds one unsigned value of at most Width bits, plus a
// written flag. Reading before the first Set is an error - the FET-80
// ISA has no implicit zero-initialization of state.
type Register struct {
	which   string
	width   uint
	mask    uint64
	value   uint64
	written bool
}

// New returns a Register of the given bit width. which names the
// register for UninitializedRead errors (e.g. "A", "MAR", "PC").
// Width must be between 1 and 64.
func New(which string, width uint) *Register {
	return &Register{
		which: which,
		width: width,
		mask:  mask(width),
	}
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Set stores v mod 2^Width and marks the register written. Always
// succeeds.
func (r *Register) Set(v uint64) {
	r.value = v & r.mask
	r.written = true
}

// Get returns the stored value, or UninitializedRead if Set has never
// been called.
func (r *Register) Get() (uint64, error) {
	if !r.written {
		return 0, errs.UninitializedRead{Which: r.which}
	}
	return r.value, nil
}

// IsWritten reports whether Set has ever been called.
func (r *Register) IsWritten() bool {
	return r.written
}

// Width returns the register's bit width.
func (r *Register) Width() uint {
	return r.width
}

// Which returns the register's name, as used in error messages.
func (r *Register) Which() string {
	return r.which
}

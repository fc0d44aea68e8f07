// Package errs defines the structured error types raised by the FET-80
// core. Every error that a caller might need to inspect (as opposed to
// simply propagate) is its own exported type implementing the error
// interface, rather than an opaque fmt.Errorf string.
package errs

import "fmt"

// UninitializedRead indicates a register or memory cell was read before
// ever being written. Which identifies the offending location, e.g.
// "A", "B", "ACC", "M", "MAR", "PC" or "ROM[3]".
type UninitializedRead struct {
	Which string
}

// Error implements the error interface.
func (e UninitializedRead) Error() string {
	return fmt.Sprintf("uninitialized read: %s has never been written", e.Which)
}

// FlagsUnavailable indicates the ALU flag block was read before any
// compute() call has ever run.
type FlagsUnavailable struct{}

// Error implements the error interface.
func (e FlagsUnavailable) Error() string {
	return "ALU flags unavailable: no computation has run yet"
}

// IllegalInstruction indicates a fatal decode or dispatch failure: an
// empty ROM slot, an opcode unknown to its family, or an invalid
// src/dest for the family. Address identifies the offending ROM slot.
type IllegalInstruction struct {
	Address uint64
	Reason  string
}

// Error implements the error interface.
func (e IllegalInstruction) Error() string {
	return fmt.Sprintf("illegal instruction at address %d: %s", e.Address, e.Reason)
}

// ValueOutOfRange indicates a loaded instruction record carried a field
// value outside the range its width allows. Runtime arithmetic never
// raises this - it always normalizes via modulo - this is only raised
// by callers that choose to validate records before loading them.
type ValueOutOfRange struct {
	Field string
	Value uint64
	Max   uint64
}

// Error implements the error interface.
func (e ValueOutOfRange) Error() string {
	return fmt.Sprintf("value out of range: %s = %d exceeds max %d", e.Field, e.Value, e.Max)
}

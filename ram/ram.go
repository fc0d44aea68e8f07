// Package ram implements the FET-80's byte-addressable (by convention;
// actually width-addressable) memory: 2^A word registers, addressed
// through an internal memory-address register (MAR). Writing the MAR
// and then writing/reading the addressed cell is a two-step protocol:
// the MAR must be set at least once before any read or write.
package ram

import "github.com/nimaid/fet80/register"

// RAM is a flat array of 2^addrWidth word registers plus one MAR
// register. It is the adaptation of the teacher's memory.Bank
// Read/Write/PowerOn shape to FET-80's explicit two-step addressing
// and write-tracked cells.
type RAM struct {
	dataWidth uint
	addrWidth uint
	mar       *register.Register
	cells     []*register.Register
}

// New returns a RAM of 2^addrWidth cells, each dataWidth bits wide.
func New(dataWidth, addrWidth uint) *RAM {
	size := uint64(1) << addrWidth
	cells := make([]*register.Register, size)
	for i := range cells {
		cells[i] = register.New("M", dataWidth)
	}
	return &RAM{
		dataWidth: dataWidth,
		addrWidth: addrWidth,
		mar:       register.New("MAR", addrWidth),
		cells:     cells,
	}
}

// SetAddress loads the MAR with v mod 2^addrWidth. Always succeeds.
func (r *RAM) SetAddress(v uint64) {
	r.mar.Set(v)
}

// Address returns the current MAR value, or UninitializedRead if the
// MAR has never been set.
func (r *RAM) Address() (uint64, error) {
	return r.mar.Get()
}

// Write stores v mod 2^dataWidth into the cell currently addressed by
// the MAR. Fails if the MAR was never set.
func (r *RAM) Write(v uint64) error {
	addr, err := r.mar.Get()
	if err != nil {
		return err
	}
	r.cells[addr].Set(v)
	return nil
}

// Read returns the value of the cell currently addressed by the MAR.
// Fails if the MAR was never set, or if the addressed cell was never
// written.
func (r *RAM) Read() (uint64, error) {
	addr, err := r.mar.Get()
	if err != nil {
		return 0, err
	}
	return r.cells[addr].Get()
}

// Cell is one snapshot entry returned by Snapshot: Written reports
// whether the cell has ever been set, and Value is only meaningful
// when Written is true.
type Cell struct {
	Written bool
	Value   uint64
}

// Snapshot returns the full contents of RAM, one Cell per address, in
// address order. Unwritten cells report Written == false, matching
// the optional-word semantics spec.md requires of ram_snapshot without
// relying on a Python-style sentinel value.
func (r *RAM) Snapshot() []Cell {
	out := make([]Cell, len(r.cells))
	for i, c := range r.cells {
		if v, err := c.Get(); err == nil {
			out[i] = Cell{Written: true, Value: v}
		}
	}
	return out
}

// Size returns the number of addressable cells (2^addrWidth).
func (r *RAM) Size() int {
	return len(r.cells)
}

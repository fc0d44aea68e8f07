package alu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

func TestFlagsUnavailableBeforeCompute(t *testing.T) {
	a := New(8)
	if _, err := a.FlagsBlock(); err == nil {
		t.Fatalf("FlagsBlock before any Compute: got nil error, want FlagsUnavailable")
	}
	if _, err := a.Acc(); err == nil {
		t.Fatalf("Acc before any Compute: got nil error, want UninitializedRead")
	}
}

func TestComputeBoundaryCases(t *testing.T) {
	tests := []struct {
		name  string
		fn    Function
		x, y  uint64
		cin   bool
		want  uint64
		flags Flags
	}{
		{
			name: "add_carry_wraps_to_zero",
			fn:   ADD, x: 255, y: 1, cin: false,
			want:  0,
			flags: Flags{Cout: true, Eqz: true, Nez: false, Ltz: false, Gez: true, Lez: true, Gtz: false},
		},
		{
			name: "add_sign_bit_set",
			fn:   ADD, x: 128, y: 0, cin: false,
			want:  128,
			flags: Flags{Cout: false, Eqz: false, Nez: true, Ltz: true, Gez: false, Lez: true, Gtz: false},
		},
		{
			name: "nand_zero_zero_is_all_ones",
			fn:   NAND, x: 0, y: 0, cin: false,
			want:  255,
			flags: Flags{Cout: false, Eqz: false, Nez: true, Ltz: true, Gez: false, Lez: true, Gtz: false},
		},
		{
			name: "nand_allones_allones_is_zero",
			fn:   NAND, x: 255, y: 255, cin: false,
			want:  0,
			flags: Flags{Cout: true, Eqz: true, Nez: false, Ltz: false, Gez: true, Lez: true, Gtz: false},
		},
		{
			name: "add_with_carry_in",
			fn:   ADD, x: 1, y: 1, cin: true,
			want:  3,
			flags: Flags{Cout: false, Eqz: false, Nez: true, Ltz: false, Gez: true, Lez: false, Gtz: true},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := New(8)
			a.Compute(test.fn, test.x, test.y, test.cin)

			got, err := a.Acc()
			if err != nil {
				t.Fatalf("Acc() after Compute: unexpected error %v\nstate: %s", err, spew.Sdump(a))
			}
			if got != test.want {
				t.Errorf("Acc() after Compute(%s, %d, %d, cin=%t): got %d, want %d", test.fn, test.x, test.y, test.cin, got, test.want)
			}

			flags, err := a.FlagsBlock()
			if err != nil {
				t.Fatalf("FlagsBlock() after Compute: unexpected error %v", err)
			}
			if diff := deep.Equal(flags, test.flags); diff != nil {
				t.Errorf("FlagsBlock() after Compute(%s, %d, %d, cin=%t): diff (-got +want): %v\nstate: %s", test.fn, test.x, test.y, test.cin, diff, spew.Sdump(a))
			}
		})
	}
}

func TestCoutReflectsCurrentCallRegardlessOfFunction(t *testing.T) {
	a := New(8)
	// First an ADD that carries.
	a.Compute(ADD, 255, 1, false)
	flags, _ := a.FlagsBlock()
	if !flags.Cout {
		t.Fatalf("Cout after carrying ADD: got false, want true")
	}
	// Then a NAND with operands whose underlying adder does NOT carry;
	// cout must reflect THIS call's adder, not the previous ADD's.
	a.Compute(NAND, 0, 0, false)
	flags, _ = a.FlagsBlock()
	if flags.Cout {
		t.Errorf("Cout after non-carrying NAND: got true, want false (cout must track the current call's adder)")
	}
}

func TestCarryFlagMatchesUnconditionalAdd(t *testing.T) {
	tests := []struct {
		x, y uint64
		cin  bool
		want bool
	}{
		{x: 200, y: 55, cin: false, want: false},
		{x: 200, y: 56, cin: false, want: true},
		{x: 254, y: 0, cin: true, want: false},
		{x: 255, y: 0, cin: true, want: true},
	}
	for _, test := range tests {
		a := New(8)
		a.Compute(NAND, test.x, test.y, test.cin)
		flags, err := a.FlagsBlock()
		if err != nil {
			t.Fatalf("FlagsBlock: unexpected error %v", err)
		}
		if flags.Cout != test.want {
			t.Errorf("Cout for NAND(%d,%d,cin=%t): got %t, want %t (must equal x+y+cin>=256)", test.x, test.y, test.cin, flags.Cout, test.want)
		}
	}
}

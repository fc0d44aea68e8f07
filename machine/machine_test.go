package machine

import "testing"

func TestRegisterRoundTrips(t *testing.T) {
	m := New(8, 8)
	m.SetA(300) // 300 mod 256 == 44
	got, err := m.GetA()
	if err != nil {
		t.Fatalf("GetA: unexpected error %v", err)
	}
	if got != 44 {
		t.Errorf("GetA after SetA(300) on an 8-bit machine: got %d, want 44", got)
	}

	m.SetB(7)
	got, err = m.GetB()
	if err != nil || got != 7 {
		t.Errorf("GetB after SetB(7): got (%d, %v), want (7, nil)", got, err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := New(8, 8)
	m.SetMAddress(9)
	if err := m.SetM(123); err != nil {
		t.Fatalf("SetM: unexpected error %v", err)
	}
	m.SetMAddress(0)
	m.SetMAddress(9)
	got, err := m.GetM()
	if err != nil {
		t.Fatalf("GetM: unexpected error %v", err)
	}
	if got != 123 {
		t.Errorf("GetM after addressing back to 9: got %d, want 123", got)
	}
}

func TestPCIncrementAndWrap(t *testing.T) {
	m := New(8, 2) // 4 addresses
	if got := m.GetPC(); got != 0 {
		t.Fatalf("GetPC on fresh machine: got %d, want 0", got)
	}
	m.SetPC(3)
	m.IncrementPC()
	if got := m.GetPC(); got != 0 {
		t.Errorf("IncrementPC from 3 on a 2-bit address machine: got %d, want 0", got)
	}
}

func TestFlagsUnavailableBeforeAnyCompute(t *testing.T) {
	m := New(8, 8)
	if _, err := m.Flags(); err == nil {
		t.Fatalf("Flags before any Add/Nand: got nil error, want FlagsUnavailable")
	}
}

func TestAddAndNandUpdateACCAndFlags(t *testing.T) {
	m := New(8, 8)
	m.Add(255, 1, false)
	acc, err := m.GetACC()
	if err != nil {
		t.Fatalf("GetACC: unexpected error %v", err)
	}
	if acc != 0 {
		t.Errorf("GetACC after Add(255,1,false): got %d, want 0", acc)
	}
	flags, err := m.Flags()
	if err != nil {
		t.Fatalf("Flags: unexpected error %v", err)
	}
	if !flags.Cout || !flags.Eqz {
		t.Errorf("Flags after Add(255,1,false): got %+v, want Cout=true Eqz=true", flags)
	}

	m.Nand(0, 0)
	acc, _ = m.GetACC()
	if acc != 255 {
		t.Errorf("GetACC after Nand(0,0): got %d, want 255", acc)
	}
}

func TestRAMSnapshotLength(t *testing.T) {
	m := New(8, 4)
	snap := m.RAMSnapshot()
	if len(snap) != 16 {
		t.Fatalf("RAMSnapshot length on a 4-bit address machine: got %d, want 16", len(snap))
	}
}

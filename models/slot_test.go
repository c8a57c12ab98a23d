package models

import "testing"

func TestSlotTransitionCycle(t *testing.T) {
	allowed := []struct{ from, to string }{
		{SlotStatusOpen, SlotStatusReserved},
		{SlotStatusReserved, SlotStatusOccupied},
		{SlotStatusReserved, SlotStatusOpen},
		{SlotStatusOccupied, SlotStatusOpen},
	}
	for _, tc := range allowed {
		if !CanTransitionSlot(tc.from, tc.to) {
			t.Errorf("%s -> %s harusnya diizinkan", tc.from, tc.to)
		}
	}
}

func TestSlotTransitionRejectsShortcuts(t *testing.T) {
	denied := []struct{ from, to string }{
		{SlotStatusOpen, SlotStatusOccupied},
		{SlotStatusOccupied, SlotStatusReserved},
		{SlotStatusOpen, SlotStatusOpen},
		{SlotStatusReserved, SlotStatusReserved},
	}
	for _, tc := range denied {
		if CanTransitionSlot(tc.from, tc.to) {
			t.Errorf("%s -> %s harusnya ditolak", tc.from, tc.to)
		}
	}
}

func TestSlotTransitionSources(t *testing.T) {
	cases := []struct {
		to   string
		want []string
	}{
		{SlotStatusReserved, []string{SlotStatusOpen}},
		{SlotStatusOccupied, []string{SlotStatusReserved}},
		{SlotStatusOpen, []string{SlotStatusReserved, SlotStatusOccupied}},
		{SlotStatusClosed, nil},
	}
	for _, tc := range cases {
		got := SlotTransitionSources(tc.to)
		if len(got) != len(tc.want) {
			t.Errorf("sumber transisi ke %s = %v, harusnya %v", tc.to, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("sumber transisi ke %s = %v, harusnya %v", tc.to, got, tc.want)
				break
			}
		}
	}
}

func TestSlotClosedOutsideCycle(t *testing.T) {
	statuses := []string{SlotStatusOpen, SlotStatusReserved, SlotStatusOccupied, SlotStatusClosed}

	// closed tidak pernah dimasuki atau ditinggalkan lewat siklus transaksi.
	for _, s := range statuses {
		if CanTransitionSlot(s, SlotStatusClosed) {
			t.Errorf("%s -> closed harusnya ditolak lewat siklus transaksi", s)
		}
		if CanTransitionSlot(SlotStatusClosed, s) {
			t.Errorf("closed -> %s harusnya ditolak lewat siklus transaksi", s)
		}
	}
}

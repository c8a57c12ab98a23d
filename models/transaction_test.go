package models

import "testing"

func TestTransactionTransitionsForward(t *testing.T) {
	allowed := []struct{ from, to string }{
		{TransactionStatusReserved, TransactionStatusActive},
		{TransactionStatusReserved, TransactionStatusCancelled},
		{TransactionStatusActive, TransactionStatusCompleted},
		{TransactionStatusActive, TransactionStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransitionTransaction(tc.from, tc.to) {
			t.Errorf("%s -> %s harusnya diizinkan", tc.from, tc.to)
		}
	}
}

func TestTransactionNoBackwardOrTerminalTransitions(t *testing.T) {
	statuses := []string{
		TransactionStatusReserved,
		TransactionStatusActive,
		TransactionStatusCompleted,
		TransactionStatusCancelled,
	}

	denied := []struct{ from, to string }{
		{TransactionStatusActive, TransactionStatusReserved},
		{TransactionStatusReserved, TransactionStatusCompleted},
		{TransactionStatusCompleted, TransactionStatusActive},
		{TransactionStatusCancelled, TransactionStatusReserved},
	}
	for _, tc := range denied {
		if CanTransitionTransaction(tc.from, tc.to) {
			t.Errorf("%s -> %s harusnya ditolak", tc.from, tc.to)
		}
	}

	// Status terminal tidak punya transisi keluar sama sekali.
	for _, terminal := range []string{TransactionStatusCompleted, TransactionStatusCancelled} {
		for _, to := range statuses {
			if CanTransitionTransaction(terminal, to) {
				t.Errorf("status terminal %s tidak boleh pindah ke %s", terminal, to)
			}
		}
	}
}

func TestTransactionTransitionSources(t *testing.T) {
	cases := []struct {
		to   string
		want []string
	}{
		{TransactionStatusActive, []string{TransactionStatusReserved}},
		{TransactionStatusCompleted, []string{TransactionStatusActive}},
		{TransactionStatusCancelled, []string{TransactionStatusReserved, TransactionStatusActive}},
		{TransactionStatusReserved, nil},
	}
	for _, tc := range cases {
		got := TransactionTransitionSources(tc.to)
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

func TestIsTerminalTransaction(t *testing.T) {
	if !IsTerminalTransaction(TransactionStatusCompleted) {
		t.Error("completed harusnya terminal")
	}
	if !IsTerminalTransaction(TransactionStatusCancelled) {
		t.Error("cancelled harusnya terminal")
	}
	if IsTerminalTransaction(TransactionStatusReserved) {
		t.Error("reserved bukan terminal")
	}
	if IsTerminalTransaction(TransactionStatusActive) {
		t.Error("active bukan terminal")
	}
}

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"b 1234 xyz", "B1234XYZ"},
		{"B-1234-XYZ", "B1234XYZ"},
		{"b1234xyz", "B1234XYZ"},
		{"AB 12 CD", "AB12CD"},
		{"B1234XYZ", "B1234XYZ"},
	}
	for _, tc := range cases {
		if got := NormalizePlate(tc.in); got != tc.want {
			t.Errorf("NormalizePlate(%q) = %q, harusnya %q", tc.in, got, tc.want)
		}
	}
}

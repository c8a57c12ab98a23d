package handlers

import (
	"testing"
	"time"
)

func TestHitungTarifRoundsUpPerHour(t *testing.T) {
	entry := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		exit time.Time
		rate float64
		want float64
	}{
		{"lima menit tetap satu jam", entry.Add(5 * time.Minute), 5000, 5000},
		{"tepat satu jam", entry.Add(1 * time.Hour), 5000, 5000},
		{"satu jam lewat satu menit", entry.Add(61 * time.Minute), 5000, 10000},
		{"dua setengah jam", entry.Add(150 * time.Minute), 5000, 15000},
		{"tarif motor", entry.Add(3 * time.Hour), 2000, 6000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hitungTarif(tc.rate, entry, tc.exit); got != tc.want {
				t.Errorf("hitungTarif = %.0f, harusnya %.0f", got, tc.want)
			}
		})
	}
}

func TestHitungTarifMinimumOneHour(t *testing.T) {
	entry := time.Now()

	// Keluar di menit yang sama tetap kena tarif satu jam.
	if got := hitungTarif(3000, entry, entry); got != 3000 {
		t.Errorf("durasi nol harusnya dihitung satu jam, dapat %.0f", got)
	}
}

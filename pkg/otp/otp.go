package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"time"
)

// Validity adalah masa berlaku kode OTP.
const Validity = 5 * time.Minute

var (
	ErrExpired   = errors.New("kode OTP sudah kadaluarsa")
	ErrIncorrect = errors.New("kode OTP salah")
)

// Generate menurunkan kode OTP 6 digit dari hash gabungan secret server,
// waktu penerbitan, identitas proses/host, dan byte acak kriptografis.
// Dua penerbitan tidak pernah menghasilkan seed yang sama tanpa perlu
// menyimpan secret per user. Expiry mengikuti Validity.
func Generate(secret string, now time.Time) (code string, expiry time.Time, err error) {
	entropy := make([]byte, 16)
	if _, err := rand.Read(entropy); err != nil {
		return "", time.Time{}, fmt.Errorf("gagal membaca entropi acak: %w", err)
	}

	hostname, _ := os.Hostname()

	h := sha256.New()
	h.Write([]byte(secret))
	h.Write([]byte(now.Format(time.RFC3339Nano)))
	h.Write([]byte(fmt.Sprintf("%d:%s", os.Getpid(), hostname)))
	h.Write(entropy)
	digest := h.Sum(nil)

	n := binary.BigEndian.Uint32(digest[:4]) % 1000000
	return fmt.Sprintf("%06d", n), now.Add(Validity), nil
}

// Verify memeriksa kode yang dikirim user terhadap kode tersimpan.
// Kadaluarsa diperiksa lebih dulu: kode benar yang sudah lewat masa
// berlakunya tetap ditolak dengan ErrExpired.
func Verify(stored, submitted string, expiry, now time.Time) error {
	if stored == "" {
		return ErrIncorrect
	}
	if now.After(expiry) {
		return ErrExpired
	}
	if stored != submitted {
		return ErrIncorrect
	}
	return nil
}

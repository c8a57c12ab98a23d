package otp

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateProducesSixDigits(t *testing.T) {
	now := time.Now()

	code, expiry, err := Generate("secret-otp", now)
	if err != nil {
		t.Fatalf("Generate gagal: %v", err)
	}

	if len(code) != 6 {
		t.Errorf("panjang kode harusnya 6, dapat %d (%q)", len(code), code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("kode mengandung karakter non-digit: %q", code)
			break
		}
	}

	if !expiry.Equal(now.Add(Validity)) {
		t.Errorf("expiry harusnya %v, dapat %v", now.Add(Validity), expiry)
	}
}

func TestGenerateVariesBetweenCalls(t *testing.T) {
	now := time.Now()

	// Entropi acak membuat tabrakan pada waktu yang sama sangat kecil.
	// Sepuluh penerbitan beruntun tidak boleh semuanya identik.
	first, _, err := Generate("secret-otp", now)
	if err != nil {
		t.Fatalf("Generate gagal: %v", err)
	}
	allSame := true
	for i := 0; i < 10; i++ {
		code, _, err := Generate("secret-otp", now)
		if err != nil {
			t.Fatalf("Generate gagal: %v", err)
		}
		if code != first {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("sepuluh kode beruntun semuanya identik")
	}
}

func TestVerifyAcceptsCorrectCodeWithinValidity(t *testing.T) {
	now := time.Now()
	expiry := now.Add(Validity)

	if err := Verify("123456", "123456", expiry, now); err != nil {
		t.Errorf("kode benar dalam masa berlaku harusnya diterima, dapat %v", err)
	}
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	now := time.Now()
	expiry := now.Add(Validity)

	if err := Verify("123456", "654321", expiry, now); !errors.Is(err, ErrIncorrect) {
		t.Errorf("kode salah harusnya ErrIncorrect, dapat %v", err)
	}
}

func TestVerifyRejectsExpiredCode(t *testing.T) {
	issued := time.Now().Add(-10 * time.Minute)
	expiry := issued.Add(Validity)

	// Kode benar tapi sudah lewat masa berlaku tetap ditolak.
	if err := Verify("123456", "123456", expiry, time.Now()); !errors.Is(err, ErrExpired) {
		t.Errorf("kode kadaluarsa harusnya ErrExpired, dapat %v", err)
	}
}

func TestVerifyExpiryCheckedBeforeMismatch(t *testing.T) {
	issued := time.Now().Add(-10 * time.Minute)
	expiry := issued.Add(Validity)

	if err := Verify("123456", "000000", expiry, time.Now()); !errors.Is(err, ErrExpired) {
		t.Errorf("kadaluarsa diperiksa lebih dulu, harusnya ErrExpired, dapat %v", err)
	}
}

func TestVerifyRejectsEmptyStoredCode(t *testing.T) {
	now := time.Now()

	if err := Verify("", "123456", now.Add(Validity), now); !errors.Is(err, ErrIncorrect) {
		t.Errorf("kode tersimpan kosong harusnya ErrIncorrect, dapat %v", err)
	}
}

func TestVerifyBoundaryAtExactExpiry(t *testing.T) {
	now := time.Now()
	expiry := now

	// Tepat di detik expiry kode masih berlaku; ditolak hanya setelahnya.
	if err := Verify("123456", "123456", expiry, now); err != nil {
		t.Errorf("tepat di waktu expiry harusnya masih berlaku, dapat %v", err)
	}
	if err := Verify("123456", "123456", expiry, now.Add(time.Nanosecond)); !errors.Is(err, ErrExpired) {
		t.Errorf("sesudah expiry harusnya ErrExpired, dapat %v", err)
	}
}

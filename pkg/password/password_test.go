package password

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123")
	if err != nil {
		t.Fatalf("HashPassword gagal: %v", err)
	}
	if hash == "Password123" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}

	if !CheckPasswordHash("Password123", hash) {
		t.Error("password benar harusnya cocok dengan hash-nya")
	}
	if CheckPasswordHash("password123", hash) {
		t.Error("password salah tidak boleh cocok")
	}
}

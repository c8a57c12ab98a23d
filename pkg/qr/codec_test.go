package qr

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("kunci-rahasia-untuk-pengujian-32b")

func newTestCodec() *Codec {
	return NewCodec(testSecret)
}

func encodeRaw(t *testing.T, p Payload) string {
	t.Helper()
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("gagal marshal payload: %v", err)
	}
	return base64.URLEncoding.EncodeToString(raw)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := newTestCodec()
	timestamp := time.Now().Format(time.RFC3339)

	encoded, err := codec.Encode("550e8400-e29b-41d4-a716-446655440000", "reserved", "B1234XYZ", timestamp)
	if err != nil {
		t.Fatalf("Encode gagal: %v", err)
	}

	decoded, err := codec.DecodeAndVerify(encoded)
	if err != nil {
		t.Fatalf("DecodeAndVerify gagal: %v", err)
	}

	if decoded.UUID != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("UUID tidak cocok: %s", decoded.UUID)
	}
	if decoded.Status != "reserved" {
		t.Errorf("Status tidak cocok: %s", decoded.Status)
	}
	if decoded.Plate != "B1234XYZ" {
		t.Errorf("Plate tidak cocok: %s", decoded.Plate)
	}
	if decoded.Timestamp != timestamp {
		t.Errorf("Timestamp tidak cocok: %s", decoded.Timestamp)
	}
}

func TestEncodeRejectsInvalidStatus(t *testing.T) {
	codec := newTestCodec()
	timestamp := time.Now().Format(time.RFC3339)

	for _, status := range []string{"completed", "cancelled", "open", ""} {
		_, err := codec.Encode("uuid-1", status, "B1234XYZ", timestamp)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("status %q: harusnya ErrInvalidStatus, dapat %v", status, err)
		}
	}
}

func TestDecodeRejectsTamperedFields(t *testing.T) {
	codec := newTestCodec()
	timestamp := time.Now().Format(time.RFC3339)

	encoded, err := codec.Encode("uuid-asli", "reserved", "B1234XYZ", timestamp)
	if err != nil {
		t.Fatalf("Encode gagal: %v", err)
	}
	raw, _ := base64.URLEncoding.DecodeString(encoded)
	var valid Payload
	if err := json.Unmarshal(raw, &valid); err != nil {
		t.Fatalf("gagal unmarshal payload valid: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(p *Payload)
	}{
		{"uuid diubah", func(p *Payload) { p.UUID = "uuid-lain" }},
		{"status diubah", func(p *Payload) { p.Status = "active" }},
		{"plat diubah", func(p *Payload) { p.Plate = "D5678ABC" }},
		{"timestamp diubah", func(p *Payload) { p.Timestamp = time.Now().Add(time.Hour).Format(time.RFC3339) }},
		{"signature diubah", func(p *Payload) { p.Signature = "deadbeef" + p.Signature[8:] }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tampered := valid
			tc.mutate(&tampered)
			if _, err := codec.DecodeAndVerify(encodeRaw(t, tampered)); !errors.Is(err, ErrInvalidContent) {
				t.Errorf("harusnya ErrInvalidContent, dapat %v", err)
			}
		})
	}
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	codec := newTestCodec()
	other := NewCodec([]byte("kunci-berbeda-untuk-pengujian-32b"))

	encoded, err := codec.Encode("uuid-1", "active", "B1234XYZ", time.Now().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Encode gagal: %v", err)
	}

	if _, err := other.DecodeAndVerify(encoded); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("secret berbeda harusnya ErrInvalidContent, dapat %v", err)
	}
}

func TestDecodeRejectsMalformedContent(t *testing.T) {
	codec := newTestCodec()

	cases := []struct {
		name    string
		content string
	}{
		{"bukan base64", "ini bukan base64 yang sah!!"},
		{"bukan json", base64.URLEncoding.EncodeToString([]byte("bukan json"))},
		{"kosong", ""},
		{"json kosong", base64.URLEncoding.EncodeToString([]byte("{}"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := codec.DecodeAndVerify(tc.content); !errors.Is(err, ErrInvalidContent) {
				t.Errorf("harusnya ErrInvalidContent, dapat %v", err)
			}
		})
	}
}

func TestDecodeRejectsMissingFields(t *testing.T) {
	codec := newTestCodec()
	timestamp := time.Now().Format(time.RFC3339)

	base := Payload{
		UUID:      "uuid-1",
		Status:    "reserved",
		Plate:     "B1234XYZ",
		Timestamp: timestamp,
	}
	base.Signature = codec.sign(base.UUID, base.Status, base.Plate, base.Timestamp)

	cases := []struct {
		name   string
		mutate func(p *Payload)
	}{
		{"tanpa uuid", func(p *Payload) { p.UUID = "" }},
		{"tanpa status", func(p *Payload) { p.Status = "" }},
		{"tanpa plat", func(p *Payload) { p.Plate = "" }},
		{"tanpa timestamp", func(p *Payload) { p.Timestamp = "" }},
		{"tanpa signature", func(p *Payload) { p.Signature = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			incomplete := base
			tc.mutate(&incomplete)
			if _, err := codec.DecodeAndVerify(encodeRaw(t, incomplete)); !errors.Is(err, ErrInvalidContent) {
				t.Errorf("harusnya ErrInvalidContent, dapat %v", err)
			}
		})
	}
}

func TestDecodeRejectsSignedTerminalStatus(t *testing.T) {
	codec := newTestCodec()
	timestamp := time.Now().Format(time.RFC3339)

	// Payload bertanda tangan sah tapi statusnya di luar daftar yang
	// diizinkan tetap harus ditolak.
	p := Payload{
		UUID:      "uuid-1",
		Status:    "completed",
		Plate:     "B1234XYZ",
		Timestamp: timestamp,
	}
	p.Signature = codec.sign(p.UUID, p.Status, p.Plate, p.Timestamp)

	if _, err := codec.DecodeAndVerify(encodeRaw(t, p)); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("status completed harusnya ErrInvalidContent, dapat %v", err)
	}
}

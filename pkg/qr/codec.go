package qr

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidStatus dikembalikan saat status transaksi tidak layak
	// dibuatkan QR (hanya reserved dan active yang sah).
	ErrInvalidStatus = errors.New("status transaksi tidak valid untuk QR")

	// ErrInvalidContent dikembalikan untuk payload yang rusak, tidak
	// lengkap, atau gagal verifikasi signature. Semua kegagalan decode
	// diperlakukan sama supaya tidak membocorkan detail ke pemegang QR.
	ErrInvalidContent = errors.New("isi QR tidak valid")
)

// Payload adalah isi QR yang sudah terverifikasi. Urutan field dan
// delimiter titik dua pada canonical string adalah bagian dari kontrak wire:
// mengubahnya membatalkan signature semua QR lama.
type Payload struct {
	UUID      string `json:"uuid"`
	Status    string `json:"status"`
	Plate     string `json:"plate"`
	Timestamp string `json:"timestamp"`
	Signature string `json:"signature"`
}

// Codec menandatangani dan memverifikasi payload QR dengan HMAC-SHA256.
// Secret diinjeksi dari konfigurasi, bukan dibaca dari state global.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

func statusAllowed(status string) bool {
	return status == "reserved" || status == "active"
}

func (c *Codec) sign(uuid, status, plate, timestamp string) string {
	canonical := fmt.Sprintf("%s:%s:%s:%s", uuid, status, plate, timestamp)
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// Encode membangun payload QR bertanda tangan dan mengembalikannya sebagai
// base64 URL-safe dari JSON payload.
func (c *Codec) Encode(uuid, status, plate, timestamp string) (string, error) {
	if !statusAllowed(status) {
		return "", ErrInvalidStatus
	}

	payload := Payload{
		UUID:      uuid,
		Status:    status,
		Plate:     plate,
		Timestamp: timestamp,
		Signature: c.sign(uuid, status, plate, timestamp),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gagal serialisasi payload QR: %w", err)
	}

	return base64.URLEncoding.EncodeToString(raw), nil
}

// DecodeAndVerify membongkar payload QR dan memverifikasi signature-nya.
// Perbandingan signature memakai hmac.Equal (constant time).
func (c *Codec) DecodeAndVerify(encoded string) (*Payload, error) {
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidContent
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ErrInvalidContent
	}

	if payload.UUID == "" || payload.Status == "" || payload.Plate == "" ||
		payload.Timestamp == "" || payload.Signature == "" {
		return nil, ErrInvalidContent
	}

	if !statusAllowed(payload.Status) {
		return nil, ErrInvalidContent
	}

	expected := c.sign(payload.UUID, payload.Status, payload.Plate, payload.Timestamp)
	if !hmac.Equal([]byte(expected), []byte(payload.Signature)) {
		return nil, ErrInvalidContent
	}

	return &payload, nil
}

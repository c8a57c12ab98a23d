package config

import (
	"encoding/base64"
	"testing"
)

func TestLoadConfigDefaultSecrets(t *testing.T) {
	cfg := LoadConfig()

	// Kunci QR sudah berupa bytes hasil decode tunggal di LoadConfig;
	// pemakai tidak boleh perlu decode ulang dengan alfabet apa pun.
	if len(cfg.QR_SECRET) != 32 {
		t.Errorf("QR_SECRET harusnya 32 byte, dapat %d", len(cfg.QR_SECRET))
	}

	decoded, err := base64.URLEncoding.DecodeString(cfg.PASETO_SECRET)
	if err != nil {
		t.Fatalf("PASETO_SECRET default bukan base64 URL-safe yang sah: %v", err)
	}
	if len(decoded) != 32 {
		t.Errorf("PASETO_SECRET harusnya decode ke 32 byte, dapat %d", len(decoded))
	}
}

func TestLoadConfigDefaultsComplete(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Port == "" {
		t.Error("Port default tidak boleh kosong")
	}
	if cfg.OTP_SECRET == "" {
		t.Error("OTP_SECRET default tidak boleh kosong")
	}
	if cfg.MAIL_FROM == "" {
		t.Error("MAIL_FROM default tidak boleh kosong")
	}
}

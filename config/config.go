package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	MONGOSTRING    string
	PASETO_SECRET  string
	QR_SECRET      []byte
	OTP_SECRET     string
	RESEND_API_KEY string
	MAIL_FROM      string
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	pasetoSecret := getEnv("PASETO_SECRET", "default_paseto_secret_base64_mustbe32bytes_=")
	mustBe32Bytes("PASETO_SECRET", pasetoSecret)

	// Kunci penandatangan QR terpisah dari kunci token sesi. Didecode
	// sekali di sini; pemakai menerima bytes jadi, bukan string base64.
	qrSecret := mustDecode32Bytes("QR_SECRET", getEnv("QR_SECRET", "default_qr_signing_secret_base64_32bytes___="))

	return &AppConfig{
		Port:           getEnv("PORT", "3000"),
		MONGOSTRING:    getEnv("MONGOSTRING", ""),
		PASETO_SECRET:  pasetoSecret,
		QR_SECRET:      qrSecret,
		OTP_SECRET:     getEnv("OTP_SECRET", "rahasia-otp-parkir"),
		RESEND_API_KEY: getEnv("RESEND_API_KEY", ""),
		MAIL_FROM:      getEnv("MAIL_FROM", "Sistem Manajemen Parkir <noreply@parkir.example.com>"),
	}
}

func mustBe32Bytes(name, secretBase64 string) {
	mustDecode32Bytes(name, secretBase64)
}

func mustDecode32Bytes(name, secretBase64 string) []byte {
	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("%s in .env is not a valid Base64 URL-encoded string: %v", name, err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("%s (decoded) must be exactly 32 bytes long. Current length: %d", name, len(secretBytes))
	}
	return secretBytes
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

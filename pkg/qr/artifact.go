package qr

import (
	"encoding/base64"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"Sistem-Manajemen-Parkir/models"
)

// Artifact adalah hasil render QR: gambar siap tampil di client plus
// payload mentahnya untuk audit/log.
type Artifact struct {
	ImageDataURI string
	RawPayload   string
}

// MakeArtifact membuat QR baru untuk transaksi dengan timestamp segar.
// Level koreksi error tertinggi dipakai supaya cetakan fisik yang sebagian
// tertutup atau kotor tetap bisa dipindai. Transaksi berstatus terminal
// tidak mendapat QR (ErrInvalidStatus dari codec diteruskan).
func (c *Codec) MakeArtifact(tx *models.Transaction) (*Artifact, error) {
	timestamp := time.Now().Format(time.RFC3339)

	payload, err := c.Encode(tx.UUID, tx.Status, tx.PlateNumber, timestamp)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(payload, qrcode.Highest, 256)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat gambar QR Code: %w", err)
	}

	return &Artifact{
		ImageDataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		RawPayload:   payload,
	}, nil
}

package qr

import (
	"errors"
	"strings"
	"testing"

	"Sistem-Manajemen-Parkir/models"
)

func TestMakeArtifactForReservedTransaction(t *testing.T) {
	codec := newTestCodec()

	tx := &models.Transaction{
		UUID:        "550e8400-e29b-41d4-a716-446655440000",
		Status:      models.TransactionStatusReserved,
		PlateNumber: "B1234XYZ",
	}

	artifact, err := codec.MakeArtifact(tx)
	if err != nil {
		t.Fatalf("MakeArtifact gagal: %v", err)
	}

	if !strings.HasPrefix(artifact.ImageDataURI, "data:image/png;base64,") {
		t.Errorf("ImageDataURI bukan data URI PNG: %.40s", artifact.ImageDataURI)
	}

	decoded, err := codec.DecodeAndVerify(artifact.RawPayload)
	if err != nil {
		t.Fatalf("payload hasil MakeArtifact gagal diverifikasi: %v", err)
	}
	if decoded.UUID != tx.UUID || decoded.Status != tx.Status || decoded.Plate != tx.PlateNumber {
		t.Errorf("isi payload tidak cocok dengan transaksi: %+v", decoded)
	}
}

func TestMakeArtifactRejectsTerminalTransaction(t *testing.T) {
	codec := newTestCodec()

	for _, status := range []string{models.TransactionStatusCompleted, models.TransactionStatusCancelled} {
		tx := &models.Transaction{
			UUID:        "uuid-1",
			Status:      status,
			PlateNumber: "B1234XYZ",
		}
		if _, err := codec.MakeArtifact(tx); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("status %s: harusnya ErrInvalidStatus, dapat %v", status, err)
		}
	}
}

package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status transaksi hanya maju: reserved -> active -> completed,
// atau berbelok ke cancelled dari reserved/active.
const (
	TransactionStatusReserved  = "reserved"
	TransactionStatusActive    = "active"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

type Transaction struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UUID            string             `json:"uuid" bson:"uuid,omitempty"`
	UserID          primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	EstablishmentID primitive.ObjectID `json:"establishment_id" bson:"establishment_id,omitempty"`
	SlotID          primitive.ObjectID `json:"slot_id" bson:"slot_id,omitempty"`
	VehicleType     string             `json:"vehicle_type" bson:"vehicle_type,omitempty"`
	PlateNumber     string             `json:"plate_number" bson:"plate_number,omitempty"`
	Status          string             `json:"status" bson:"status,omitempty"`
	EntryTime       *time.Time         `json:"entry_time,omitempty" bson:"entry_time,omitempty"`
	ExitTime        *time.Time         `json:"exit_time,omitempty" bson:"exit_time,omitempty"`
	TotalAmount     float64            `json:"total_amount" bson:"total_amount,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type ReserveSlotPayload struct {
	EstablishmentID string `json:"establishment_id" validate:"required"`
	SlotID          string `json:"slot_id" validate:"required"`
	PlateNumber     string `json:"plate_number" validate:"required,platenumber"`
	VehicleType     string `json:"vehicle_type" validate:"required,oneof=motor mobil truk"`
}

type VerifyQRPayload struct {
	QRContent string `json:"qr_content" validate:"required"`
}

var transactionTransitions = map[string][]string{
	TransactionStatusReserved: {TransactionStatusActive, TransactionStatusCancelled},
	TransactionStatusActive:   {TransactionStatusCompleted, TransactionStatusCancelled},
}

// CanTransitionTransaction memeriksa apakah perpindahan status transaksi sah.
// Tidak ada transisi mundur, dan status terminal tidak bisa ditinggalkan.
func CanTransitionTransaction(from, to string) bool {
	for _, allowed := range transactionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransactionTransitionSources mengembalikan semua status asal yang sah
// untuk berpindah ke status tujuan, diturunkan dari tabel transisi yang
// sama dengan CanTransitionTransaction.
func TransactionTransitionSources(to string) []string {
	var sources []string
	for _, from := range []string{TransactionStatusReserved, TransactionStatusActive, TransactionStatusCompleted, TransactionStatusCancelled} {
		if CanTransitionTransaction(from, to) {
			sources = append(sources, from)
		}
	}
	return sources
}

// IsTerminalTransaction melaporkan apakah status sudah final.
func IsTerminalTransaction(status string) bool {
	return status == TransactionStatusCompleted || status == TransactionStatusCancelled
}

// NormalizePlate menyeragamkan nomor polisi: huruf kapital tanpa
// spasi dan tanpa tanda hubung. Bentuk inilah yang masuk ke payload QR.
func NormalizePlate(plate string) string {
	plate = strings.ToUpper(plate)
	plate = strings.ReplaceAll(plate, " ", "")
	plate = strings.ReplaceAll(plate, "-", "")
	return plate
}

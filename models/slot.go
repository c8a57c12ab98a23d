package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status slot parkir. closed hanya bisa diubah lewat endpoint admin,
// bukan lewat siklus transaksi.
const (
	SlotStatusOpen     = "open"
	SlotStatusReserved = "reserved"
	SlotStatusOccupied = "occupied"
	SlotStatusClosed   = "closed"
)

type Slot struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EstablishmentID primitive.ObjectID `json:"establishment_id" bson:"establishment_id,omitempty"`
	SlotCode        string             `json:"slot_code" bson:"slot_code,omitempty"`
	VehicleType     string             `json:"vehicle_type" bson:"vehicle_type,omitempty"`
	SlotStatus      string             `json:"slot_status" bson:"slot_status,omitempty"`
	HourlyRate      float64            `json:"hourly_rate" bson:"hourly_rate,omitempty"`
	IsActive        bool               `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type SlotCreatePayload struct {
	SlotCode    string  `json:"slot_code" validate:"required,min=1,max=20"`
	VehicleType string  `json:"vehicle_type" validate:"required,oneof=motor mobil truk"`
	HourlyRate  float64 `json:"hourly_rate" validate:"omitempty,min=0"`
}

type SlotUpdatePayload struct {
	SlotCode    string  `json:"slot_code,omitempty" validate:"omitempty,min=1,max=20"`
	VehicleType string  `json:"vehicle_type,omitempty" validate:"omitempty,oneof=motor mobil truk"`
	HourlyRate  float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
	SlotStatus  string  `json:"slot_status,omitempty" validate:"omitempty,oneof=open closed"`
}

var slotTransitions = map[string][]string{
	SlotStatusOpen:     {SlotStatusReserved},
	SlotStatusReserved: {SlotStatusOccupied, SlotStatusOpen},
	SlotStatusOccupied: {SlotStatusOpen},
	SlotStatusClosed:   {},
}

// CanTransitionSlot memeriksa apakah perpindahan status slot sah menurut
// siklus open -> reserved -> occupied -> open. Status closed tidak pernah
// dimasuki ataupun ditinggalkan lewat siklus transaksi.
func CanTransitionSlot(from, to string) bool {
	for _, allowed := range slotTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SlotTransitionSources mengembalikan semua status asal yang sah untuk
// berpindah ke status tujuan. Filter compare-and-swap di repository
// diturunkan dari sini, sehingga tabel transisi hanya ada satu.
func SlotTransitionSources(to string) []string {
	var sources []string
	for _, from := range []string{SlotStatusOpen, SlotStatusReserved, SlotStatusOccupied, SlotStatusClosed} {
		if CanTransitionSlot(from, to) {
			sources = append(sources, from)
		}
	}
	return sources
}

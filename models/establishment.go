package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Establishment struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name,omitempty"`
	Address        string             `json:"address" bson:"address,omitempty"`
	ManagerID      primitive.ObjectID `json:"manager_id,omitempty" bson:"manager_id,omitempty"`
	HourlyRate     float64            `json:"hourly_rate" bson:"hourly_rate,omitempty"`
	OpenTime       string             `json:"open_time" bson:"open_time,omitempty"`
	CloseTime      string             `json:"close_time" bson:"close_time,omitempty"`
	StartDate      string             `json:"start_date" bson:"start_date,omitempty"`
	RecurrenceRule string             `json:"recurrence_rule" bson:"recurrence_rule,omitempty"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type EstablishmentCreatePayload struct {
	Name           string  `json:"name" validate:"required,min=3,max=150"`
	Address        string  `json:"address" validate:"required,min=5,max=255"`
	HourlyRate     float64 `json:"hourly_rate" validate:"required,min=0"`
	OpenTime       string  `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime      string  `json:"close_time" validate:"required,datetime=15:04"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	RecurrenceRule string  `json:"recurrence_rule" validate:"omitempty"`
}

type EstablishmentUpdatePayload struct {
	Name           string  `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Address        string  `json:"address,omitempty" validate:"omitempty,min=5,max=255"`
	HourlyRate     float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
	OpenTime       string  `json:"open_time,omitempty" validate:"omitempty,datetime=15:04"`
	CloseTime      string  `json:"close_time,omitempty" validate:"omitempty,datetime=15:04"`
	RecurrenceRule string  `json:"recurrence_rule,omitempty"`
}

// ScheduleEntry adalah satu hari operasional hasil ekspansi RecurrenceRule.
type ScheduleEntry struct {
	Date      string `json:"date"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

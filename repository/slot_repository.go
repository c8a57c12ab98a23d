package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Sistem-Manajemen-Parkir/config"
	"Sistem-Manajemen-Parkir/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotRepository interface {
	CreateSlot(ctx context.Context, slot *models.Slot) (*mongo.InsertOneResult, error)
	GetSlotsByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, status string) ([]models.Slot, error)
	GetSlotByID(ctx context.Context, id primitive.ObjectID) (*models.Slot, error)
	UpdateSlot(ctx context.Context, id primitive.ObjectID, payload *models.SlotUpdatePayload) (*mongo.UpdateResult, error)
	DeactivateSlot(ctx context.Context, id primitive.ObjectID) error
	TransitionStatus(ctx context.Context, id primitive.ObjectID, from []string, to string) error
}

type slotRepository struct {
	collection *mongo.Collection
}

func NewSlotRepository() SlotRepository {
	return &slotRepository{
		collection: config.GetCollection(config.SlotCollection),
	}
}

func (r *slotRepository) CreateSlot(ctx context.Context, slot *models.Slot) (*mongo.InsertOneResult, error) {
	slot.SlotStatus = models.SlotStatusOpen
	slot.IsActive = true
	slot.CreatedAt = time.Now()
	slot.UpdatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, slot)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("slot_code sudah dipakai di establishment ini: %w", err)
		}
		return nil, fmt.Errorf("gagal membuat slot: %w", err)
	}
	return res, nil
}

func (r *slotRepository) GetSlotsByEstablishment(ctx context.Context, establishmentID primitive.ObjectID, status string) ([]models.Slot, error) {
	filter := bson.M{"establishment_id": establishmentID, "is_active": true}
	if status != "" {
		filter["slot_status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "slot_code", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar slot: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Slot
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode daftar slot: %w", err)
	}

	if len(results) == 0 {
		return []models.Slot{}, nil
	}
	return results, nil
}

func (r *slotRepository) GetSlotByID(ctx context.Context, id primitive.ObjectID) (*models.Slot, error) {
	var slot models.Slot
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("gagal mencari slot: %w", err)
	}
	return &slot, nil
}

func (r *slotRepository) UpdateSlot(ctx context.Context, id primitive.ObjectID, payload *models.SlotUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.SlotCode != "" {
		set["slot_code"] = payload.SlotCode
	}
	if payload.VehicleType != "" {
		set["vehicle_type"] = payload.VehicleType
	}
	if payload.HourlyRate != 0 {
		set["hourly_rate"] = payload.HourlyRate
	}
	if payload.SlotStatus != "" {
		// Override administratif: hanya open/closed yang boleh lewat
		// endpoint ini; reserved/occupied milik siklus transaksi.
		set["slot_status"] = payload.SlotStatus
	}

	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal update slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrSlotNotFound
	}
	return res, nil
}

func (r *slotRepository) DeactivateSlot(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("gagal menonaktifkan slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// TransitionStatus mengubah status slot secara compare-and-swap: filter
// memuat status saat ini sehingga cek dan tulis terjadi dalam satu operasi,
// bukan read-modify-write dua langkah. Reservasi yang kalah balapan pada
// slot yang sama gagal di sini dengan ErrSlotTaken.
func (r *slotRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, from []string, to string) error {
	filter := bson.M{
		"_id":         id,
		"is_active":   true,
		"slot_status": bson.M{"$in": from},
	}
	update := bson.M{"$set": bson.M{
		"slot_status": to,
		"updated_at":  time.Now(),
	}}

	res := r.collection.FindOneAndUpdate(ctx, filter, update)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Bedakan slot hilang dari slot yang statusnya tidak cocok.
			if _, findErr := r.GetSlotByID(ctx, id); findErr != nil {
				return ErrSlotNotFound
			}
			return ErrSlotTaken
		}
		return fmt.Errorf("gagal transisi status slot: %w", err)
	}
	return nil
}

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
)

type EstablishmentRepository interface {
	CreateEstablishment(ctx context.Context, est *models.Establishment) (*mongo.InsertOneResult, error)
	GetAllEstablishments(ctx context.Context) ([]models.Establishment, error)
	GetEstablishmentByID(ctx context.Context, id primitive.ObjectID) (*models.Establishment, error)
	UpdateEstablishment(ctx context.Context, id primitive.ObjectID, payload *models.EstablishmentUpdatePayload) (*mongo.UpdateResult, error)
	DeactivateEstablishment(ctx context.Context, id primitive.ObjectID) error
}

type establishmentRepository struct {
	collection *mongo.Collection
}

func NewEstablishmentRepository() EstablishmentRepository {
	return &establishmentRepository{
		collection: config.GetCollection(config.EstablishmentCollection),
	}
}

func (r *establishmentRepository) CreateEstablishment(ctx context.Context, est *models.Establishment) (*mongo.InsertOneResult, error) {
	est.CreatedAt = time.Now()
	est.UpdatedAt = time.Now()
	est.IsActive = true

	res, err := r.collection.InsertOne(ctx, est)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat establishment: %w", err)
	}
	return res, nil
}

func (r *establishmentRepository) GetAllEstablishments(ctx context.Context) ([]models.Establishment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar establishment: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Establishment
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode daftar establishment: %w", err)
	}

	if len(results) == 0 {
		return []models.Establishment{}, nil
	}
	return results, nil
}

func (r *establishmentRepository) GetEstablishmentByID(ctx context.Context, id primitive.ObjectID) (*models.Establishment, error) {
	var est models.Establishment
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&est)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEstablishmentNotFound
		}
		return nil, fmt.Errorf("gagal mencari establishment: %w", err)
	}
	return &est, nil
}

func (r *establishmentRepository) UpdateEstablishment(ctx context.Context, id primitive.ObjectID, payload *models.EstablishmentUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Address != "" {
		set["address"] = payload.Address
	}
	if payload.HourlyRate != 0 {
		set["hourly_rate"] = payload.HourlyRate
	}
	if payload.OpenTime != "" {
		set["open_time"] = payload.OpenTime
	}
	if payload.CloseTime != "" {
		set["close_time"] = payload.CloseTime
	}
	if payload.RecurrenceRule != "" {
		set["recurrence_rule"] = payload.RecurrenceRule
	}

	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal update establishment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrEstablishmentNotFound
	}
	return res, nil
}

// DeactivateEstablishment melakukan soft delete.
func (r *establishmentRepository) DeactivateEstablishment(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_active":  false,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("gagal menonaktifkan establishment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrEstablishmentNotFound
	}
	return nil
}

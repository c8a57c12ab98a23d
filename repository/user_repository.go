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

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		collection: config.GetCollection(config.UserCollection),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat user: %w", err)
	}
	return res, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("gagal mencari user berdasarkan email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("gagal mencari user berdasarkan id: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar user: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("gagal decode daftar user: %w", err)
	}

	if len(users) == 0 {
		return []models.User{}, nil
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, payload *models.UserUpdatePayload) (*mongo.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now()}
	if payload.Name != "" {
		set["name"] = payload.Name
	}
	if payload.Email != "" {
		set["email"] = payload.Email
	}
	if payload.Phone != "" {
		set["phone"] = payload.Phone
	}
	if payload.Address != "" {
		set["address"] = payload.Address
	}

	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("gagal update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}
	return res, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"password":   hashedPassword,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("gagal update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("gagal menghapus user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetOTP menyimpan kode OTP baru pada user, menimpa kode lama jika ada.
func (r *UserRepository) SetOTP(ctx context.Context, id primitive.ObjectID, code string, expiry time.Time) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"otp_secret": code,
		"otp_expiry": expiry,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return fmt.Errorf("gagal menyimpan OTP: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeOTP menghapus kode OTP secara atomik dengan syarat kode yang
// tersimpan masih sama. Satu kode hanya bisa dikonsumsi sekali: percobaan
// kedua tidak menemukan dokumen yang cocok.
func (r *UserRepository) ConsumeOTP(ctx context.Context, id primitive.ObjectID, code string) error {
	filter := bson.M{"_id": id, "otp_secret": code}
	update := bson.M{
		"$unset": bson.M{"otp_secret": "", "otp_expiry": ""},
		"$set":   bson.M{"updated_at": time.Now()},
	}

	res := r.collection.FindOneAndUpdate(ctx, filter, update)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return fmt.Errorf("gagal konsumsi OTP: %w", err)
	}
	return nil
}

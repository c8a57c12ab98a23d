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

type TransactionRepository interface {
	CreateReservation(ctx context.Context, tx *models.Transaction) error
	ActivateByUUID(ctx context.Context, uuid string, entryTime time.Time) (*models.Transaction, error)
	CompleteByUUID(ctx context.Context, uuid string, exitTime time.Time, totalAmount float64) (*models.Transaction, error)
	CancelTransaction(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	FindByUUID(ctx context.Context, uuid string) (*models.Transaction, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Transaction, error)
	FindActiveByUser(ctx context.Context, userID primitive.ObjectID) (*models.Transaction, error)
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type transactionRepository struct {
	txCollection   *mongo.Collection
	slotCollection *mongo.Collection
	estCollection  *mongo.Collection
	slots          SlotRepository
}

// NewTransactionRepository menerima SlotRepository supaya semua transisi
// status slot lewat satu implementasi compare-and-swap yang sama.
func NewTransactionRepository(slots SlotRepository) TransactionRepository {
	return &transactionRepository{
		txCollection:   config.GetCollection(config.TransactionCollection),
		slotCollection: config.GetCollection(config.SlotCollection),
		estCollection:  config.GetCollection(config.EstablishmentCollection),
		slots:          slots,
	}
}

// withSession menjalankan callback dalam satu transaksi database. Mutasi
// status slot dan baris transaksi selalu commit bersama atau tidak sama
// sekali; tidak ada state antara yang bisa diamati operasi lain.
func (r *transactionRepository) withSession(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := config.MongoConn.StartSession()
	if err != nil {
		return nil, fmt.Errorf("gagal memulai session database: %w", err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}

// CreateReservation membuat transaksi reserved baru sekaligus mengunci slot.
// Slot harus open dan user tidak boleh punya transaksi non-terminal lain.
func (r *transactionRepository) CreateReservation(ctx context.Context, tx *models.Transaction) error {
	_, err := r.withSession(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var existing models.Transaction
		err := r.txCollection.FindOne(sc, bson.M{
			"user_id": tx.UserID,
			"status":  bson.M{"$in": []string{models.TransactionStatusReserved, models.TransactionStatusActive}},
		}).Decode(&existing)
		if err == nil {
			return nil, ErrActiveTransactionExists
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("gagal memeriksa transaksi aktif user: %w", err)
		}

		if err := r.slots.TransitionStatus(sc, tx.SlotID, models.SlotTransitionSources(models.SlotStatusReserved), models.SlotStatusReserved); err != nil {
			return nil, err
		}

		tx.Status = models.TransactionStatusReserved
		tx.CreatedAt = time.Now()
		tx.UpdatedAt = time.Now()

		if _, err := r.txCollection.InsertOne(sc, tx); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Index parsial menangkap balapan yang lolos dari cek di atas.
				return nil, ErrActiveTransactionExists
			}
			return nil, fmt.Errorf("gagal membuat transaksi: %w", err)
		}
		return nil, nil
	})
	return err
}

// ActivateByUUID memindahkan transaksi reserved menjadi active dan slot
// terkait menjadi occupied. Filter status pada kedua update adalah penjaga
// replay: QR lama berstatus reserved gagal begitu transaksi sudah active.
func (r *transactionRepository) ActivateByUUID(ctx context.Context, uuid string, entryTime time.Time) (*models.Transaction, error) {
	result, err := r.withSession(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"uuid":   uuid,
			"status": bson.M{"$in": models.TransactionTransitionSources(models.TransactionStatusActive)},
		}
		update := bson.M{"$set": bson.M{
			"status":     models.TransactionStatusActive,
			"entry_time": entryTime,
			"updated_at": time.Now(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var tx models.Transaction
		err := r.txCollection.FindOneAndUpdate(sc, filter, update, opts).Decode(&tx)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, r.classifyMissing(sc, uuid)
			}
			return nil, fmt.Errorf("gagal aktivasi transaksi: %w", err)
		}

		if err := r.slots.TransitionStatus(sc, tx.SlotID, models.SlotTransitionSources(models.SlotStatusOccupied), models.SlotStatusOccupied); err != nil {
			return nil, err
		}
		return &tx, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Transaction), nil
}

// CompleteByUUID memindahkan transaksi active menjadi completed, mencatat
// exit_time dan total_amount, lalu membuka kembali slotnya.
func (r *transactionRepository) CompleteByUUID(ctx context.Context, uuid string, exitTime time.Time, totalAmount float64) (*models.Transaction, error) {
	result, err := r.withSession(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"uuid":   uuid,
			"status": bson.M{"$in": models.TransactionTransitionSources(models.TransactionStatusCompleted)},
		}
		update := bson.M{"$set": bson.M{
			"status":       models.TransactionStatusCompleted,
			"exit_time":    exitTime,
			"total_amount": totalAmount,
			"updated_at":   time.Now(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var tx models.Transaction
		err := r.txCollection.FindOneAndUpdate(sc, filter, update, opts).Decode(&tx)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, r.classifyMissing(sc, uuid)
			}
			return nil, fmt.Errorf("gagal menyelesaikan transaksi: %w", err)
		}

		if err := r.slots.TransitionStatus(sc, tx.SlotID, models.SlotTransitionSources(models.SlotStatusOpen), models.SlotStatusOpen); err != nil {
			return nil, err
		}
		return &tx, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Transaction), nil
}

// CancelTransaction membatalkan transaksi reserved maupun active dan
// melepas slot kembali ke open. Slot yang sedang ditutup admin dibiarkan
// closed.
func (r *transactionRepository) CancelTransaction(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	result, err := r.withSession(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"_id":    id,
			"status": bson.M{"$in": models.TransactionTransitionSources(models.TransactionStatusCancelled)},
		}
		update := bson.M{"$set": bson.M{
			"status":     models.TransactionStatusCancelled,
			"updated_at": time.Now(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var tx models.Transaction
		err := r.txCollection.FindOneAndUpdate(sc, filter, update, opts).Decode(&tx)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				var found models.Transaction
				if findErr := r.txCollection.FindOne(sc, bson.M{"_id": id}).Decode(&found); findErr != nil {
					return nil, ErrTransactionNotFound
				}
				return nil, ErrStatusConflict
			}
			return nil, fmt.Errorf("gagal membatalkan transaksi: %w", err)
		}

		releaseFrom := models.SlotTransitionSources(models.SlotStatusOpen)
		if err := r.slots.TransitionStatus(sc, tx.SlotID, releaseFrom, models.SlotStatusOpen); err != nil {
			switch {
			case errors.Is(err, ErrSlotNotFound):
				// Slot sudah dinonaktifkan; pembatalan tetap sah.
				return &tx, nil
			case errors.Is(err, ErrSlotTaken):
				// Slot sudah ditutup admin; pembatalan tetap sah.
				if slot, slotErr := r.slots.GetSlotByID(sc, tx.SlotID); slotErr == nil && slot.SlotStatus == models.SlotStatusClosed {
					return &tx, nil
				}
			}
			return nil, err
		}
		return &tx, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Transaction), nil
}

// classifyMissing membedakan transaksi yang tidak ada dari transaksi yang
// statusnya tidak cocok dengan operasi.
func (r *transactionRepository) classifyMissing(sc mongo.SessionContext, uuid string) error {
	var found models.Transaction
	if err := r.txCollection.FindOne(sc, bson.M{"uuid": uuid}).Decode(&found); err != nil {
		return ErrTransactionNotFound
	}
	return ErrStatusConflict
}

func (r *transactionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.txCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("gagal mencari transaksi: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) FindByUUID(ctx context.Context, uuid string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.txCollection.FindOne(ctx, bson.M{"uuid": uuid}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("gagal mencari transaksi berdasarkan uuid: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.txCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil riwayat transaksi user: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Transaction
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat transaksi: %w", err)
	}

	if len(results) == 0 {
		return []models.Transaction{}, nil
	}
	return results, nil
}

func (r *transactionRepository) FindActiveByUser(ctx context.Context, userID primitive.ObjectID) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.txCollection.FindOne(ctx, bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": []string{models.TransactionStatusReserved, models.TransactionStatusActive}},
	}).Decode(&tx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("gagal mencari transaksi aktif user: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var err error
	stats.TotalEstablishments, err = r.estCollection.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung establishment: %w", err)
	}

	stats.TotalSlots, err = r.slotCollection.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung slot: %w", err)
	}

	stats.OpenSlots, err = r.slotCollection.CountDocuments(ctx, bson.M{"is_active": true, "slot_status": models.SlotStatusOpen})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung slot open: %w", err)
	}

	stats.OccupiedSlots, err = r.slotCollection.CountDocuments(ctx, bson.M{"is_active": true, "slot_status": models.SlotStatusOccupied})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung slot occupied: %w", err)
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	stats.TransaksiHariIni, err = r.txCollection.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": startOfDay}})
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung transaksi hari ini: %w", err)
	}

	distPipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.txCollection.Aggregate(ctx, distPipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation distribusi status: %w", err)
	}
	defer cursor.Close(ctx)
	if err = cursor.All(ctx, &stats.DistribusiStatus); err != nil {
		return nil, fmt.Errorf("gagal decode distribusi status: %w", err)
	}

	revenuePipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: models.TransactionStatusCompleted}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}},
	}
	revCursor, err := r.txCollection.Aggregate(ctx, revenuePipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation pendapatan: %w", err)
	}
	defer revCursor.Close(ctx)

	var revenue []struct {
		Total float64 `bson:"total"`
	}
	if err = revCursor.All(ctx, &revenue); err != nil {
		return nil, fmt.Errorf("gagal decode pendapatan: %w", err)
	}
	if len(revenue) > 0 {
		stats.TotalPendapatan = revenue[0].Total
	}

	return stats, nil
}

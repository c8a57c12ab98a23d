package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Parkir/models"
	"Sistem-Manajemen-Parkir/pkg/paseto"
	"Sistem-Manajemen-Parkir/pkg/qr"
	util "Sistem-Manajemen-Parkir/pkg/utils"
	"Sistem-Manajemen-Parkir/repository"
)

type TransactionHandler struct {
	txRepo   repository.TransactionRepository
	slotRepo repository.SlotRepository
	codec    *qr.Codec
}

func NewTransactionHandler(txRepo repository.TransactionRepository, slotRepo repository.SlotRepository, codec *qr.Codec) *TransactionHandler {
	return &TransactionHandler{
		txRepo:   txRepo,
		slotRepo: slotRepo,
		codec:    codec,
	}
}

// ReserveSlot godoc
// @Summary Reserve Slot
// @Description Mereservasi slot parkir yang berstatus open. Mengembalikan QR bertanda tangan untuk verifikasi masuk di gerbang.
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reservation body models.ReserveSlotPayload true "Data reservasi"
// @Success 201 {object} models.ReserveSuccessResponse "Slot berhasil direservasi"
// @Failure 400 {object} models.ValidationErrorResponse "Validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Slot tidak ditemukan"
// @Failure 409 {object} models.ConflictErrorResponse "Slot sudah direservasi atau user masih punya transaksi aktif"
// @Router /transactions/reserve [post]
func (h *TransactionHandler) ReserveSlot(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.ReserveSlotPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	estID, err := primitive.ObjectIDFromHex(payload.EstablishmentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}
	slotID, err := primitive.ObjectIDFromHex(payload.SlotID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID slot tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	slot, err := h.slotRepo.GetSlotByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa slot: %v", err)})
	}
	if slot.EstablishmentID != estID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot tidak berada di establishment tersebut"})
	}
	if slot.VehicleType != payload.VehicleType {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jenis kendaraan tidak cocok dengan slot"})
	}

	newTx := &models.Transaction{
		ID:              primitive.NewObjectID(),
		UUID:            uuid.New().String(),
		UserID:          claims.UserID,
		EstablishmentID: estID,
		SlotID:          slotID,
		VehicleType:     payload.VehicleType,
		PlateNumber:     models.NormalizePlate(payload.PlateNumber),
	}

	if err := h.txRepo.CreateReservation(ctx, newTx); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot tidak ditemukan"})
		case errors.Is(err, repository.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot sudah direservasi"})
		case errors.Is(err, repository.ErrActiveTransactionExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Anda masih memiliki transaksi aktif"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat reservasi: %v", err)})
		}
	}

	artifact, err := h.codec.MakeArtifact(newTx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat QR Code"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Slot berhasil direservasi",
		"transaction":   newTx,
		"qr_code_image": artifact.ImageDataURI,
		"qr_payload":    artifact.RawPayload,
	})
}

// VerifyEntry godoc
// @Summary Verify Entry
// @Description Memverifikasi QR reservasi di gerbang masuk. Transaksi pindah ke active dan slot menjadi occupied.
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.VerifyQRPayload true "Isi QR hasil scan"
// @Success 200 {object} models.VerifySuccessResponse "Verifikasi masuk berhasil"
// @Failure 400 {object} models.ErrorResponse "Isi QR tidak valid atau status tidak sesuai"
// @Failure 404 {object} models.NotFoundErrorResponse "Transaksi tidak ditemukan"
// @Failure 409 {object} models.ConflictErrorResponse "QR sudah tidak berlaku"
// @Router /transactions/verify-entry [post]
func (h *TransactionHandler) VerifyEntry(c *fiber.Ctx) error {
	var payload models.VerifyQRPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	decoded, err := h.codec.DecodeAndVerify(payload.QRContent)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Isi QR tidak valid"})
	}

	if decoded.Status != models.TransactionStatusReserved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR ini bukan QR masuk. Status tidak sesuai."})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	// Filter status pada update adalah penjaga replay: QR reserved yang
	// sudah pernah dipakai gagal di sini karena transaksi sudah active.
	tx, err := h.txRepo.ActivateByUUID(ctx, decoded.UUID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaksi tidak ditemukan"})
		case errors.Is(err, repository.ErrStatusConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "QR sudah tidak berlaku. Status transaksi sudah berubah."})
		case errors.Is(err, repository.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Status slot tidak konsisten dengan transaksi"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal verifikasi masuk: %v", err)})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Verifikasi masuk berhasil",
		"transaction": tx,
	})
}

// VerifyExit godoc
// @Summary Verify Exit
// @Description Memverifikasi QR di gerbang keluar. Transaksi pindah ke completed, tarif dihitung, dan slot kembali open.
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.VerifyQRPayload true "Isi QR hasil scan"
// @Success 200 {object} models.VerifySuccessResponse "Verifikasi keluar berhasil"
// @Failure 400 {object} models.ErrorResponse "Isi QR tidak valid atau status tidak sesuai"
// @Failure 404 {object} models.NotFoundErrorResponse "Transaksi tidak ditemukan"
// @Failure 409 {object} models.ConflictErrorResponse "QR sudah tidak berlaku"
// @Router /transactions/verify-exit [post]
func (h *TransactionHandler) VerifyExit(c *fiber.Ctx) error {
	var payload models.VerifyQRPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	decoded, err := h.codec.DecodeAndVerify(payload.QRContent)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Isi QR tidak valid"})
	}

	if decoded.Status != models.TransactionStatusActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "QR ini bukan QR keluar. Status tidak sesuai."})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	tx, err := h.txRepo.FindByUUID(ctx, decoded.UUID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaksi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mencari transaksi: %v", err)})
	}

	if tx.Status != models.TransactionStatusActive || tx.EntryTime == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "QR sudah tidak berlaku. Status transaksi sudah berubah."})
	}

	slot, err := h.slotRepo.GetSlotByID(ctx, tx.SlotID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa slot: %v", err)})
	}

	exitTime := time.Now()
	totalAmount := hitungTarif(slot.HourlyRate, *tx.EntryTime, exitTime)

	updated, err := h.txRepo.CompleteByUUID(ctx, decoded.UUID, exitTime, totalAmount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaksi tidak ditemukan"})
		case errors.Is(err, repository.ErrStatusConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "QR sudah tidak berlaku. Status transaksi sudah berubah."})
		case errors.Is(err, repository.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Status slot tidak konsisten dengan transaksi"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal verifikasi keluar: %v", err)})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Verifikasi keluar berhasil",
		"transaction": updated,
	})
}

// CancelTransaction godoc
// @Summary Cancel Transaction
// @Description Membatalkan transaksi reserved maupun active. Slot kembali open kecuali sedang ditutup admin.
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.VerifySuccessResponse "Transaksi dibatalkan"
// @Failure 409 {object} models.ConflictErrorResponse "Status transaksi sudah final"
// @Failure 403 {object} models.ForbiddenErrorResponse "Bukan transaksi milik sendiri"
// @Failure 404 {object} models.NotFoundErrorResponse "Transaksi tidak ditemukan"
// @Router /transactions/{id}/cancel [post]
func (h *TransactionHandler) CancelTransaction(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID transaksi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	tx, err := h.txRepo.FindByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaksi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mencari transaksi: %v", err)})
	}

	if claims.Role == "user" && tx.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak. Bukan transaksi Anda."})
	}

	cancelled, err := h.txRepo.CancelTransaction(ctx, objID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaksi tidak ditemukan"})
		case errors.Is(err, repository.ErrStatusConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Transaksi sudah final dan tidak bisa dibatalkan"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membatalkan transaksi: %v", err)})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Transaksi berhasil dibatalkan",
		"transaction": cancelled,
	})
}

// GetTransactionByID godoc
// @Summary View Transaction
// @Description Melihat detail transaksi. Untuk status reserved/active, QR baru diterbitkan sesuai status saat ini; QR lama tidak pernah diputar ulang ke client.
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.ReserveSuccessResponse "Detail transaksi"
// @Failure 403 {object} models.ForbiddenErrorResponse "Bukan transaksi milik sendiri"
// @Failure 404 {object} models.NotFoundErrorResponse "Transaksi tidak ditemukan"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID transaksi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	tx, err := h.txRepo.FindByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaksi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mencari transaksi: %v", err)})
	}

	if claims.Role == "user" && tx.UserID != claims.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak. Bukan transaksi Anda."})
	}

	response := fiber.Map{"transaction": tx}

	if !models.IsTerminalTransaction(tx.Status) {
		artifact, err := h.codec.MakeArtifact(tx)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat QR Code"})
		}
		response["qr_code_image"] = artifact.ImageDataURI
		response["qr_payload"] = artifact.RawPayload
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetMyTransactions godoc
// @Summary My Transaction History
// @Description Mendapatkan riwayat transaksi user yang sedang login
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Transaction "Riwayat transaksi"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil riwayat"
// @Router /transactions/my-history [get]
func (h *TransactionHandler) GetMyTransactions(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	history, err := h.txRepo.FindByUser(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat transaksi"})
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

// hitungTarif menghitung biaya parkir: tarif per jam dikali durasi yang
// dibulatkan ke atas, minimal satu jam.
func hitungTarif(hourlyRate float64, entry, exit time.Time) float64 {
	hours := math.Ceil(exit.Sub(entry).Hours())
	if hours < 1 {
		hours = 1
	}
	return hourlyRate * hours
}

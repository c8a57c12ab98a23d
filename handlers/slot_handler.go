package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Parkir/models"
	util "Sistem-Manajemen-Parkir/pkg/utils"
	"Sistem-Manajemen-Parkir/repository"
)

type SlotHandler struct {
	slotRepo repository.SlotRepository
	estRepo  repository.EstablishmentRepository
}

func NewSlotHandler(slotRepo repository.SlotRepository, estRepo repository.EstablishmentRepository) *SlotHandler {
	return &SlotHandler{
		slotRepo: slotRepo,
		estRepo:  estRepo,
	}
}

// CreateSlot godoc
// @Summary Create Slot
// @Description Menambahkan slot parkir baru pada establishment (admin/pengelola). Slot baru selalu berstatus open.
// @Tags Slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Param slot body models.SlotCreatePayload true "Data slot baru"
// @Success 201 {object} object{message=string,id=string} "Slot berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Establishment tidak ditemukan"
// @Failure 409 {object} models.ConflictErrorResponse "slot_code sudah dipakai"
// @Router /establishments/{id}/slots [post]
func (h *SlotHandler) CreateSlot(c *fiber.Ctx) error {
	estID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}

	var payload models.SlotCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	est, err := h.estRepo.GetEstablishmentByID(ctx, estID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Establishment tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa establishment: %v", err)})
	}

	rate := payload.HourlyRate
	if rate == 0 {
		rate = est.HourlyRate
	}

	newSlot := &models.Slot{
		ID:              primitive.NewObjectID(),
		EstablishmentID: estID,
		SlotCode:        payload.SlotCode,
		VehicleType:     payload.VehicleType,
		HourlyRate:      rate,
	}

	result, err := h.slotRepo.CreateSlot(ctx, newSlot)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat slot: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Slot berhasil ditambahkan",
		"id":      result.InsertedID,
	})
}

// GetSlots godoc
// @Summary Get Slots
// @Description Mendapatkan daftar slot sebuah establishment, bisa difilter status (mis. ?status=open)
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Param status query string false "Filter slot_status" Enums(open, reserved, occupied, closed)
// @Success 200 {array} models.Slot "Daftar slot"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil slot"
// @Router /establishments/{id}/slots [get]
func (h *SlotHandler) GetSlots(c *fiber.Ctx) error {
	estID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}

	status := c.Query("status")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	slots, err := h.slotRepo.GetSlotsByEstablishment(ctx, estID, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil slot: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(slots)
}

// GetSlotByID godoc
// @Summary Get Slot by ID
// @Description Mendapatkan detail slot berdasarkan ID
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} models.Slot "Slot ditemukan"
// @Failure 404 {object} models.NotFoundErrorResponse "Slot tidak ditemukan"
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlotByID(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID slot tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	slot, err := h.slotRepo.GetSlotByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil slot: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(slot)
}

// UpdateSlot godoc
// @Summary Update Slot
// @Description Memperbarui data slot (admin/pengelola). slot_status di sini hanya menerima open/closed sebagai override administratif; reserved dan occupied dikelola siklus transaksi.
// @Tags Slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param slot body models.SlotUpdatePayload true "Data slot"
// @Success 200 {object} object{message=string} "Slot berhasil diperbarui"
// @Failure 400 {object} models.ValidationErrorResponse "Validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Slot tidak ditemukan"
// @Failure 409 {object} models.ConflictErrorResponse "Slot sedang dipakai transaksi"
// @Router /slots/{id} [put]
func (h *SlotHandler) UpdateSlot(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID slot tidak valid"})
	}

	var payload models.SlotUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if payload.SlotStatus != "" {
		slot, err := h.slotRepo.GetSlotByID(ctx, objID)
		if err != nil {
			if errors.Is(err, repository.ErrSlotNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot tidak ditemukan"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal memeriksa slot: %v", err)})
		}

		// Slot yang sedang reserved/occupied tidak boleh ditutup paksa;
		// transaksinya harus selesai atau dibatalkan dulu.
		if slot.SlotStatus == models.SlotStatusReserved || slot.SlotStatus == models.SlotStatusOccupied {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot sedang dipakai transaksi. Selesaikan atau batalkan transaksinya dahulu."})
		}
	}

	if _, err := h.slotRepo.UpdateSlot(ctx, objID, &payload); err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update slot: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Slot berhasil diperbarui"})
}

// DeleteSlot godoc
// @Summary Delete Slot
// @Description Menonaktifkan slot (soft delete, admin/pengelola)
// @Tags Slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} object{message=string} "Slot berhasil dinonaktifkan"
// @Failure 404 {object} models.NotFoundErrorResponse "Slot tidak ditemukan"
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID slot tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.slotRepo.DeactivateSlot(ctx, objID); err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slot tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menonaktifkan slot: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Slot berhasil dinonaktifkan"})
}

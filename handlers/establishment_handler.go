package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Manajemen-Parkir/models"
	"Sistem-Manajemen-Parkir/pkg/paseto"
	util "Sistem-Manajemen-Parkir/pkg/utils"
	"Sistem-Manajemen-Parkir/repository"
)

type EstablishmentHandler struct {
	estRepo repository.EstablishmentRepository
}

func NewEstablishmentHandler(estRepo repository.EstablishmentRepository) *EstablishmentHandler {
	return &EstablishmentHandler{estRepo: estRepo}
}

// CreateEstablishment godoc
// @Summary Create Establishment
// @Description Menambahkan establishment parkir baru (admin/pengelola)
// @Tags Establishments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param establishment body models.EstablishmentCreatePayload true "Data establishment baru"
// @Success 201 {object} object{message=string,id=string} "Establishment berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Validation error"
// @Failure 500 {object} models.ErrorResponse "Gagal membuat establishment"
// @Router /establishments [post]
func (h *EstablishmentHandler) CreateEstablishment(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.EstablishmentCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format recurrence_rule tidak valid", "details": err.Error()})
		}
	}

	newEst := &models.Establishment{
		ID:             primitive.NewObjectID(),
		Name:           payload.Name,
		Address:        payload.Address,
		ManagerID:      claims.UserID,
		HourlyRate:     payload.HourlyRate,
		OpenTime:       payload.OpenTime,
		CloseTime:      payload.CloseTime,
		StartDate:      payload.StartDate,
		RecurrenceRule: payload.RecurrenceRule,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.estRepo.CreateEstablishment(ctx, newEst)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal membuat establishment: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Establishment berhasil ditambahkan",
		"id":      result.InsertedID,
	})
}

// GetAllEstablishments godoc
// @Summary Get All Establishments
// @Description Mendapatkan daftar semua establishment aktif
// @Tags Establishments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Establishment "Daftar establishment"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil establishment"
// @Router /establishments [get]
func (h *EstablishmentHandler) GetAllEstablishments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	establishments, err := h.estRepo.GetAllEstablishments(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil establishment: %v", err)})
	}
	return c.Status(fiber.StatusOK).JSON(establishments)
}

// GetEstablishmentByID godoc
// @Summary Get Establishment by ID
// @Description Mendapatkan detail establishment berdasarkan ID
// @Tags Establishments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Success 200 {object} models.Establishment "Establishment ditemukan"
// @Failure 400 {object} models.ErrorResponse "Invalid ID format"
// @Failure 404 {object} models.NotFoundErrorResponse "Establishment tidak ditemukan"
// @Router /establishments/{id} [get]
func (h *EstablishmentHandler) GetEstablishmentByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	est, err := h.estRepo.GetEstablishmentByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Establishment tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil establishment: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(est)
}

// UpdateEstablishment godoc
// @Summary Update Establishment
// @Description Memperbarui data establishment (admin/pengelola)
// @Tags Establishments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Param establishment body models.EstablishmentUpdatePayload true "Data establishment"
// @Success 200 {object} object{message=string} "Establishment berhasil diperbarui"
// @Failure 404 {object} models.NotFoundErrorResponse "Establishment tidak ditemukan"
// @Router /establishments/{id} [put]
func (h *EstablishmentHandler) UpdateEstablishment(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}

	var payload models.EstablishmentUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	if payload.RecurrenceRule != "" {
		if _, err := rrule.StrToROption(payload.RecurrenceRule); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format recurrence_rule tidak valid", "details": err.Error()})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.estRepo.UpdateEstablishment(ctx, objID, &payload); err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Establishment tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal update establishment: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Establishment berhasil diperbarui"})
}

// DeleteEstablishment godoc
// @Summary Delete Establishment
// @Description Menonaktifkan establishment (soft delete, admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Success 200 {object} object{message=string} "Establishment berhasil dinonaktifkan"
// @Failure 404 {object} models.NotFoundErrorResponse "Establishment tidak ditemukan"
// @Router /admin/establishments/{id} [delete]
func (h *EstablishmentHandler) DeleteEstablishment(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.estRepo.DeactivateEstablishment(ctx, objID); err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Establishment tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menonaktifkan establishment: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Establishment berhasil dinonaktifkan"})
}

// GetSchedule godoc
// @Summary Get Establishment Schedule
// @Description Mengekspansi aturan hari operasional establishment menjadi daftar tanggal buka, dengan hari libur nasional dikecualikan
// @Tags Establishments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Param start_date query string true "Tanggal awal (2006-01-02)"
// @Param end_date query string true "Tanggal akhir (2006-01-02)"
// @Success 200 {object} object{data=[]models.ScheduleEntry} "Jadwal operasional"
// @Failure 400 {object} models.ErrorResponse "Format tanggal tidak valid"
// @Failure 404 {object} models.NotFoundErrorResponse "Establishment tidak ditemukan"
// @Router /establishments/{id}/schedule [get]
func (h *EstablishmentHandler) GetSchedule(c *fiber.Ctx) error {
	layout := "2006-01-02"

	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format ID establishment tidak valid"})
	}

	startDate, err := time.Parse(layout, c.Query("start_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format"})
	}
	endDate, err := time.Parse(layout, c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date format"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	est, err := h.estRepo.GetEstablishmentByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrEstablishmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Establishment tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal mengambil establishment: %v", err)})
	}

	holidayMap, err := util.GetHolidayMap(startDate.Format("2006"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}
	if startDate.Year() != endDate.Year() {
		nextYearHolidays, _ := util.GetHolidayMap(endDate.Format("2006"))
		for date, val := range nextYearHolidays {
			holidayMap[date] = val
		}
	}

	finalSchedule := []models.ScheduleEntry{}

	if est.RecurrenceRule != "" {
		rOption, err := rrule.StrToROption(est.RecurrenceRule)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Aturan perulangan tersimpan tidak valid"})
		}

		ruleStartDate, _ := time.Parse(layout, est.StartDate)
		rOption.Dtstart = ruleStartDate

		rr, err := rrule.NewRRule(*rOption)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Aturan perulangan tersimpan tidak valid"})
		}

		ruleSet := rrule.Set{}
		ruleSet.RRule(rr)

		instances := ruleSet.Between(startDate, endDate, true)

		for _, instance := range instances {
			instanceDateStr := instance.Format(layout)
			if !holidayMap[instanceDateStr] {
				finalSchedule = append(finalSchedule, models.ScheduleEntry{
					Date:      instanceDateStr,
					OpenTime:  est.OpenTime,
					CloseTime: est.CloseTime,
				})
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": finalSchedule})
}

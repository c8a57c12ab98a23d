package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Manajemen-Parkir/repository"
)

type ReportHandler struct {
	txRepo repository.TransactionRepository
}

func NewReportHandler(txRepo repository.TransactionRepository) *ReportHandler {
	return &ReportHandler{txRepo: txRepo}
}

// GetDashboardStats godoc
// @Summary Dashboard Statistics
// @Description Mendapatkan ringkasan statistik untuk dashboard admin: jumlah establishment, okupansi slot, transaksi hari ini, dan total pendapatan.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats "Statistik dashboard"
// @Failure 403 {object} models.ForbiddenErrorResponse "Akses hanya untuk admin"
// @Failure 500 {object} models.ErrorResponse "Gagal menghitung statistik"
// @Router /admin/dashboard-stats [get]
func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	stats, err := h.txRepo.GetDashboardStats(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Gagal menghitung statistik: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Manajemen-Parkir/config"
	"Sistem-Manajemen-Parkir/models"
	"Sistem-Manajemen-Parkir/pkg/mailer"
	"Sistem-Manajemen-Parkir/pkg/otp"
	"Sistem-Manajemen-Parkir/pkg/paseto"
	"Sistem-Manajemen-Parkir/pkg/password"
	util "Sistem-Manajemen-Parkir/pkg/utils"
	"Sistem-Manajemen-Parkir/repository"
)

type AuthHandler struct {
	userRepo *repository.UserRepository
	mailer   *mailer.Mailer
	cfg      *config.AppConfig
}

func NewAuthHandler(userRepo *repository.UserRepository, m *mailer.Mailer, cfg *config.AppConfig) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		mailer:   m,
		cfg:      cfg,
	}
}

// Register godoc
// @Summary Register User
// @Description Mendaftarkan user baru. Role selain 'user' hanya bisa diberikan admin.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Data registrasi user"
// @Success 201 {object} models.RegisterSuccessResponse "User berhasil didaftarkan"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 409 {object} models.ConflictErrorResponse "Email sudah terdaftar"
// @Failure 500 {object} models.ErrorResponse "Gagal mendaftarkan user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	role := "user"
	if claims, ok := c.Locals("user").(*paseto.Claims); ok && claims.Role == "admin" && payload.Role != "" {
		role = payload.Role
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "gagal hash password"})
	}

	newUser := &models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: hashedPassword,
		Role:     role,
		Phone:    payload.Phone,
		Address:  payload.Address,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email sudah terdaftar"})
	}

	result, err := h.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("gagal mendaftarkan user: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User berhasil didaftarkan",
		"user_id": result.InsertedID,
	})
}

// Login godoc
// @Summary Login User (langkah 1)
// @Description Memverifikasi email dan password, lalu mengirim kode OTP ke email. Token diterbitkan di langkah verify-otp.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Kredensial untuk Login"
// @Success 200 {object} models.LoginSuccessResponse "OTP terkirim"
// @Failure 400 {object} models.ValidationErrorResponse "Payload tidak valid"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Kombinasi email dan password salah"
// @Failure 502 {object} models.ErrorResponse "Gagal mengirim email OTP"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kombinasi email dan password salah"})
	}

	code, expiry, err := otp.Generate(h.cfg.OTP_SECRET, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat kode OTP"})
	}

	if err := h.userRepo.SetOTP(ctx, user.ID, code, expiry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan kode OTP"})
	}

	// OTP sudah tersimpan; kegagalan kirim email tidak membatalkannya,
	// user cukup meminta kode baru lewat login ulang.
	if err := h.mailer.SendOTP(user.Email, code); err != nil {
		log.Printf("Gagal mengirim email OTP ke %s: %v", user.Email, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Gagal mengirim email OTP. Silakan coba lagi."})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Kode OTP telah dikirim ke email Anda",
		"email":   user.Email,
	})
}

// VerifyOTP godoc
// @Summary Login User (langkah 2)
// @Description Memverifikasi kode OTP dan menerbitkan token PASETO. Kode hanya bisa dipakai sekali.
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.VerifyOTPPayload true "Email dan kode OTP"
// @Success 200 {object} models.VerifyOTPSuccessResponse "Login berhasil"
// @Failure 400 {object} models.ErrorResponse "Kode OTP kadaluarsa"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Kode OTP salah"
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var payload models.VerifyOTPPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kode OTP salah"})
	}

	if err := otp.Verify(user.OTPSecret, payload.OTP, user.OTPExpiry, time.Now()); err != nil {
		if errors.Is(err, otp.ErrExpired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Kode OTP sudah kadaluarsa. Silakan login ulang untuk kode baru."})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kode OTP salah"})
	}

	// Konsumsi atomik: filter mencocokkan kode tersimpan, sehingga dua
	// verifikasi bersamaan hanya satu yang berhasil.
	if err := h.userRepo.ConsumeOTP(ctx, user.ID, payload.OTP); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Kode OTP salah"})
	}

	token, err := paseto.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user_id": user.ID.Hex(),
		"role":    user.Role,
	})
}

// ChangePassword godoc
// @Summary Change Password
// @Description Mengubah password user yang sedang login
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Data untuk mengubah password"
// @Success 200 {object} models.ChangePasswordSuccessResponse "Password berhasil diubah"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi atau password lama tidak cocok"
// @Failure 500 {object} models.ErrorResponse "Gagal update password"
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*paseto.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau data sesi rusak"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Password lama tidak cocok"})
	}

	hashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal hash password baru"})
	}

	if err := h.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update password"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password berhasil diubah."})
}

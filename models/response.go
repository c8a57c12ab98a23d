package models

// Success Response Models

// RegisterSuccessResponse represents successful registration response
type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User berhasil didaftarkan"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// LoginSuccessResponse represents the first login step (OTP dispatched)
type LoginSuccessResponse struct {
	Message string `json:"message" example:"Kode OTP telah dikirim ke email Anda"`
	Email   string `json:"email" example:"user@gmail.com"`
}

// VerifyOTPSuccessResponse represents successful OTP verification response
type VerifyOTPSuccessResponse struct {
	Message string `json:"message" example:"Login berhasil"`
	Token   string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Role    string `json:"role" example:"user"`
}

// ReserveSuccessResponse represents successful slot reservation response
type ReserveSuccessResponse struct {
	Message     string      `json:"message" example:"Slot berhasil direservasi"`
	Transaction Transaction `json:"transaction"`
	QRCodeImage string      `json:"qr_code_image" example:"data:image/png;base64,iVBOR..."`
	QRPayload   string      `json:"qr_payload" example:"eyJ1dWlkIjoi..."`
}

// VerifySuccessResponse represents successful entry/exit verification response
type VerifySuccessResponse struct {
	Message     string      `json:"message" example:"Verifikasi masuk berhasil"`
	Transaction Transaction `json:"transaction"`
}

// ChangePasswordSuccessResponse represents successful password change response
type ChangePasswordSuccessResponse struct {
	Message string `json:"message" example:"Password berhasil diubah."`
}

// Error Response Models

// ErrorResponse represents basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Error  string `json:"error" example:"Validation failed"`
	Errors string `json:"errors" example:"plate_number: format nomor polisi tidak valid"`
}

// UnauthorizedErrorResponse represents 401 response
type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

// ForbiddenErrorResponse represents 403 response
type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Hak akses admin diperlukan"`
}

// NotFoundErrorResponse represents 404 response
type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Transaksi tidak ditemukan"`
}

// ConflictErrorResponse represents 409 response
type ConflictErrorResponse struct {
	Error string `json:"error" example:"Slot sudah direservasi"`
}

// DashboardStats holds admin reporting figures
type DashboardStats struct {
	TotalEstablishments int64            `json:"total_establishments"`
	TotalSlots          int64            `json:"total_slots"`
	OpenSlots           int64            `json:"open_slots"`
	OccupiedSlots       int64            `json:"occupied_slots"`
	TransaksiHariIni    int64            `json:"transaksi_hari_ini"`
	TotalPendapatan     float64          `json:"total_pendapatan"`
	DistribusiStatus    []StatusCount    `json:"distribusi_status"`
}

type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

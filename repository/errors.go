package repository

import "errors"

// Sentinel error per kegagalan domain. Handler memetakan error ini ke kode
// HTTP lewat errors.Is; repository tidak pernah menyentuh format HTTP.
var (
	ErrUserNotFound            = errors.New("user tidak ditemukan")
	ErrEstablishmentNotFound   = errors.New("establishment tidak ditemukan")
	ErrSlotNotFound            = errors.New("slot tidak ditemukan")
	ErrSlotTaken               = errors.New("slot sudah direservasi atau tidak tersedia")
	ErrTransactionNotFound     = errors.New("transaksi tidak ditemukan")
	ErrStatusConflict          = errors.New("status transaksi tidak sesuai untuk operasi ini")
	ErrActiveTransactionExists = errors.New("user masih memiliki transaksi aktif")
)

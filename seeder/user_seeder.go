// file: seeder/user_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Manajemen-Parkir/models"
	"Sistem-Manajemen-Parkir/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("🌱 Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Gagal hash password: %v", err)
	}

	// =======================================================
	// Data untuk Admin
	// =======================================================
	adminEmail := "admin.parkir@gmail.com"
	adminUser, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && adminUser != nil {
		log.Println("✅ User admin sudah ada, seeding user admin dilewati.")
	} else {
		log.Println("🔄 Menambahkan user Admin...")
		newAdmin := &models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Admin Parkir",
			Email:     adminEmail,
			Password:  string(hashedPassword),
			Role:      "admin",
			Phone:     "081234567890",
			Address:   "Jl. Administrasi No. 1, Jakarta",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := userRepo.CreateUser(ctx, newAdmin); err != nil {
			log.Printf("❌ Gagal menyimpan user admin: %v\n", err)
		} else {
			fmt.Printf("✔ User Admin (%s) berhasil ditambahkan.\n", newAdmin.Email)
		}
	}

	// =======================================================
	// Data untuk Pengelola dan User biasa
	// =======================================================
	seedAccounts := []models.User{
		{
			Name:    "Pengelola Grand Mall",
			Email:   "pengelola.grandmall@gmail.com",
			Role:    "pengelola",
			Phone:   "081298765432",
			Address: "Jl. Sudirman No. 52, Jakarta",
		},
		{
			Name:    "Pengelola Stasiun Kota",
			Email:   "pengelola.stasiunkota@gmail.com",
			Role:    "pengelola",
			Phone:   "081287654321",
			Address: "Jl. Stasiun Kota No. 1, Jakarta",
		},
		{
			Name:    "Budi Santoso",
			Email:   "budi.santoso@gmail.com",
			Role:    "user",
			Phone:   "081211112222",
			Address: "Jl. Melati No. 12, Bandung",
		},
		{
			Name:    "Siti Rahayu",
			Email:   "siti.rahayu@gmail.com",
			Role:    "user",
			Phone:   "081233334444",
			Address: "Jl. Kenanga No. 7, Surabaya",
		},
	}

	for _, account := range seedAccounts {
		existingUser, err := userRepo.FindUserByEmail(ctx, account.Email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", account.Email)
			continue
		}

		account.ID = primitive.NewObjectID()
		account.Password = string(hashedPassword)
		account.CreatedAt = time.Now()
		account.UpdatedAt = time.Now()

		if _, err := userRepo.CreateUser(ctx, &account); err != nil {
			log.Printf("❌ Gagal menyimpan user %s: %v\n", account.Name, err)
		} else {
			fmt.Printf("✔ User %s (%s) berhasil ditambahkan.\n", account.Name, account.Role)
		}
	}

	log.Println("✅ Seeding user selesai.")
}

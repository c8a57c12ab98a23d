// file: seeder/establishment_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Sistem-Manajemen-Parkir/models"
	"Sistem-Manajemen-Parkir/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedEstablishments memasukkan data establishment contoh beserta slot-slotnya.
// Seeding user harus dijalankan lebih dulu karena manager_id diambil dari
// akun pengelola hasil seed.
func SeedEstablishments(estRepo repository.EstablishmentRepository, slotRepo repository.SlotRepository, userRepo *repository.UserRepository) {
	log.Println("🌱 Memulai seeding establishment...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	existing, err := estRepo.GetAllEstablishments(ctx)
	if err != nil {
		log.Printf("❌ Gagal mengambil daftar establishment: %v\n", err)
		return
	}
	existingNames := make(map[string]bool, len(existing))
	for _, est := range existing {
		existingNames[est.Name] = true
	}

	type seedEstablishment struct {
		managerEmail string
		est          models.Establishment
		slots        []models.Slot
	}

	seedData := []seedEstablishment{
		{
			managerEmail: "pengelola.grandmall@gmail.com",
			est: models.Establishment{
				Name:           "Parkir Grand Mall",
				Address:        "Jl. Sudirman No. 52, Jakarta",
				HourlyRate:     5000,
				OpenTime:       "08:00",
				CloseTime:      "22:00",
				StartDate:      "2026-01-01",
				RecurrenceRule: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR,SA,SU",
			},
			slots: []models.Slot{
				{SlotCode: "A-01", VehicleType: "mobil", HourlyRate: 5000},
				{SlotCode: "A-02", VehicleType: "mobil", HourlyRate: 5000},
				{SlotCode: "A-03", VehicleType: "mobil", HourlyRate: 5000},
				{SlotCode: "M-01", VehicleType: "motor", HourlyRate: 2000},
				{SlotCode: "M-02", VehicleType: "motor", HourlyRate: 2000},
			},
		},
		{
			managerEmail: "pengelola.stasiunkota@gmail.com",
			est: models.Establishment{
				Name:           "Parkir Stasiun Kota",
				Address:        "Jl. Stasiun Kota No. 1, Jakarta",
				HourlyRate:     3000,
				OpenTime:       "05:00",
				CloseTime:      "23:00",
				StartDate:      "2026-01-01",
				RecurrenceRule: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
			},
			slots: []models.Slot{
				{SlotCode: "B-01", VehicleType: "mobil", HourlyRate: 3000},
				{SlotCode: "B-02", VehicleType: "truk", HourlyRate: 8000},
				{SlotCode: "M-01", VehicleType: "motor", HourlyRate: 1500},
			},
		},
	}

	for _, data := range seedData {
		if existingNames[data.est.Name] {
			fmt.Printf("Skipping: Establishment '%s' sudah ada.\n", data.est.Name)
			continue
		}

		manager, err := userRepo.FindUserByEmail(ctx, data.managerEmail)
		if err != nil || manager == nil {
			log.Printf("⚠️ Pengelola %s tidak ditemukan, establishment '%s' dilewati.\n", data.managerEmail, data.est.Name)
			continue
		}

		data.est.ID = primitive.NewObjectID()
		data.est.ManagerID = manager.ID

		if _, err := estRepo.CreateEstablishment(ctx, &data.est); err != nil {
			log.Printf("❌ Gagal menyimpan establishment '%s': %v\n", data.est.Name, err)
			continue
		}
		fmt.Printf("✔ Establishment '%s' berhasil ditambahkan.\n", data.est.Name)

		for _, slot := range data.slots {
			slot.ID = primitive.NewObjectID()
			slot.EstablishmentID = data.est.ID
			if _, err := slotRepo.CreateSlot(ctx, &slot); err != nil {
				log.Printf("❌ Gagal menyimpan slot '%s' di '%s': %v\n", slot.SlotCode, data.est.Name, err)
			} else {
				fmt.Printf("✔ Slot %s (%s) di '%s' berhasil ditambahkan.\n", slot.SlotCode, slot.VehicleType, data.est.Name)
			}
		}
	}

	log.Println("✅ Seeding establishment selesai.")
}

// file: internals/seeds/seed_demo.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	buildingModel "visitordesk_backend/internals/features/buildings/model"
	hostModel "visitordesk_backend/internals/features/hosts/model"
)

// RunDemoSeed: satu gedung demo + beberapa host, untuk setup lokal.
// Dipanggil dari main kalau SEED_DEMO=true; idempoten (skip kalau sudah ada).
func RunDemoSeed(db *gorm.DB) error {
	var b buildingModel.BuildingModel
	err := db.Where("LOWER(building_code) = LOWER(?)", "1234").Take(&b).Error
	if err == nil {
		log.Println("🌱 Seed demo: gedung sudah ada, skip")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		desc := "Gedung demo untuk setup lokal"
		b = buildingModel.BuildingModel{
			BuildingName:        "Kantor Pusat",
			BuildingCode:        "1234",
			BuildingDescription: &desc,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		dept := func(s string) *string { return &s }
		hosts := []hostModel.HostModel{
			{HostBuildingID: b.BuildingID, HostName: "Rina Kartika", HostDepartment: dept("Human Resources"), HostPosition: dept("HR Manager")},
			{HostBuildingID: b.BuildingID, HostName: "Budi Santoso", HostDepartment: dept("Engineering"), HostPosition: dept("Engineering Lead")},
			{HostBuildingID: b.BuildingID, HostName: "Sari Dewi", HostDepartment: dept("Finance")},
		}
		if err := tx.Create(&hosts).Error; err != nil {
			return err
		}

		log.Printf("🌱 Seed demo: gedung %s + %d host dibuat", b.BuildingName, len(hosts))
		return nil
	})
}

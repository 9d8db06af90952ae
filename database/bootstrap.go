// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agroplan/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plot{},
		&entities.Crop{},
		&entities.PlantingRecord{},
		&entities.CropStat{},
		&entities.PlanRun{},
		&entities.PlanCell{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

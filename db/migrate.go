package db

import (
	"fmt"
	"log"

	"github.com/lawgicai/lawgic-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Lawyer{},
		&models.TimeSlot{},
		&models.AppointmentRequest{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}

package db

import (
	"fmt"
	"log"
	"os"

	"github.com/docspot/docspot-api/models"
	"golang.org/x/crypto/bcrypt"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
		&models.LabTest{},
		&models.TestBooking{},
		&models.PasswordReset{},
		&models.Ticket{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedAdmin()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD if it
// does not exist yet.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded admin user", email)
}

package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns a fresh in-memory database with all tables migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&User{},
		&Doctor{},
		&Appointment{},
		&LabTest{},
		&TestBooking{},
		&PasswordReset{},
		&Ticket{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *User {
	t.Helper()
	user := User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyResetToken(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "reset@example.com", RoleUser)

	reset, err := CreatePasswordReset(db, user.ID, "tok-valid")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(ResetTokenTTL), reset.ExpiresAt, 5*time.Second)

	got, err := VerifyResetToken(db, "tok-valid")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	_, err = VerifyResetToken(db, "tok-unknown")
	require.Error(t, err)
}

func TestExpiredTokenRejectedEvenIfWellFormed(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "expired@example.com", RoleUser)

	stale := PasswordReset{
		Token:     "tok-stale",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&stale).Error)

	_, err := VerifyResetToken(db, "tok-stale")
	require.Error(t, err)

	// The stale row is dropped on sight.
	var count int64
	require.NoError(t, db.Model(&PasswordReset{}).Where("token = ?", "tok-stale").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestConsumedTokenCannotVerifyTwice(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "consume@example.com", RoleUser)

	_, err := CreatePasswordReset(db, user.ID, "tok-once")
	require.NoError(t, err)

	reset, err := VerifyResetToken(db, "tok-once")
	require.NoError(t, err)
	require.NoError(t, reset.Consume(db))

	_, err = VerifyResetToken(db, "tok-once")
	require.Error(t, err)
}

func TestNewTokenReplacesPreviousOne(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "replace@example.com", RoleUser)

	_, err := CreatePasswordReset(db, user.ID, "tok-old")
	require.NoError(t, err)
	_, err = CreatePasswordReset(db, user.ID, "tok-new")
	require.NoError(t, err)

	_, err = VerifyResetToken(db, "tok-old")
	require.Error(t, err)
	_, err = VerifyResetToken(db, "tok-new")
	require.NoError(t, err)
}

func TestPurgeExpiredResets(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "purge@example.com", RoleUser)

	require.NoError(t, db.Create(&PasswordReset{
		Token: "tok-dead", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&PasswordReset{
		Token: "tok-live", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	dropped, err := PurgeExpiredResets(db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), dropped)

	_, err = VerifyResetToken(db, "tok-live")
	require.NoError(t, err)
}

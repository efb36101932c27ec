package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ResetTokenTTL is how long a reset link stays usable.
const ResetTokenTTL = time.Hour

type PasswordReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// CreatePasswordReset issues a reset record for userID. Any previous token
// for the same user is dropped so only the latest link works.
func CreatePasswordReset(tx *gorm.DB, userID uint, token string) (*PasswordReset, error) {
	if err := tx.Where("user_id = ?", userID).Delete(&PasswordReset{}).Error; err != nil {
		return nil, err
	}
	reset := PasswordReset{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(ResetTokenTTL),
	}
	if err := tx.Create(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

// VerifyResetToken looks a token up and rejects it when expired. Expired
// rows are deleted on sight.
func VerifyResetToken(tx *gorm.DB, token string) (*PasswordReset, error) {
	var reset PasswordReset
	if err := tx.Where("token = ?", token).First(&reset).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invalid or expired reset token")
		}
		return nil, err
	}
	if reset.Expired(time.Now()) {
		tx.Delete(&reset)
		return nil, fmt.Errorf("invalid or expired reset token")
	}
	return &reset, nil
}

// Consume burns the token so it can never verify twice.
func (p *PasswordReset) Consume(tx *gorm.DB) error {
	return tx.Delete(p).Error
}

// PurgeExpiredResets removes stale tokens and returns how many were dropped.
func PurgeExpiredResets(tx *gorm.DB, now time.Time) (int64, error) {
	res := tx.Where("expires_at < ?", now).Delete(&PasswordReset{})
	return res.RowsAffected, res.Error
}

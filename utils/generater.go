package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateResetToken returns a 64-char hex token for password-reset links.
func GenerateResetToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return fmt.Sprintf("%x", b)
}

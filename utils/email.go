package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendResetEmail mails a password-reset link. The link stays valid for one
// hour; failures are returned to the caller and never retried.
func SendResetEmail(to, name, resetLink string) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset the password for your account.</p>
		<p><a href="%s">Click here to reset your password</a></p>
		<p>This link expires in 1 hour. If you did not request a reset, you can ignore this email.</p>
		<p>Best regards,</p>
		<p>The DocSpot Team</p>
	`, name, resetLink)

	return SendEmail(to, "Reset your DocSpot password", body)
}

// SendStatusEmail notifies a user that the status of one of their records
// (application, appointment, test booking) changed.
func SendStatusEmail(to, name, what, status string) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your %s is now <strong>%s</strong>.</p>
		<p>Log in to your account for details.</p>
		<p>Best regards,</p>
		<p>The DocSpot Team</p>
	`, name, what, status)

	return SendEmail(to, fmt.Sprintf("Update on your %s", what), body)
}

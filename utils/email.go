package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendSoldNotification mails the agent when one of their listings is sold.
// Failures here must never roll back the sale, callers only log them.
func SendSoldNotification(to, propertyName, buyerName string, sellingPrice float64) error {
	config := loadEmailConfig()
	if config.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Property sold: %s", propertyName))

	body := fmt.Sprintf(`
		<h2>Congratulations!</h2>
		<p>Your listing <b>%s</b> has been sold to %s for %.2f.</p>
		<p>The sale invoice has been generated and is ready for download.</p>
	`, propertyName, buyerName, sellingPrice)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

package channel

import (
	"context"
	"fmt"
	"net/smtp"
)

// EmailChannel implements email notification channel over SMTP
type EmailChannel struct {
	smtpHost  string
	smtpPort  int
	fromEmail string
	username  string
	password  string
}

// NewEmailChannel creates a new email notification channel
func NewEmailChannel(smtpHost string, smtpPort int, fromEmail, username, password string) *EmailChannel {
	return &EmailChannel{
		smtpHost:  smtpHost,
		smtpPort:  smtpPort,
		fromEmail: fromEmail,
		username:  username,
		password:  password,
	}
}

// Send sends email to a single recipient
func (c *EmailChannel) Send(ctx context.Context, address, subject, body string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	msg := "From: " + c.fromEmail + "\r\n" +
		"To: " + address + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body

	var smtpAuth smtp.Auth
	if c.username != "" {
		smtpAuth = smtp.PlainAuth("", c.username, c.password, c.smtpHost)
	}

	addr := fmt.Sprintf("%s:%d", c.smtpHost, c.smtpPort)
	if err := smtp.SendMail(addr, smtpAuth, c.fromEmail, []string{address}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *EmailChannel) Validate() error {
	if c.smtpHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.smtpPort <= 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.fromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

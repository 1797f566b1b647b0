// Package mailer sends account notification emails over SMTP. Sending is
// best effort: when no credentials are configured the mail content is
// logged instead, so development setups work without an SMTP server.
package mailer

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Mailer defines the interface for account email operations
type Mailer interface {
	SendCredentialsEmail(toEmail, toName, password string) error
	SendPasswordResetEmail(toEmail, toName, tempPassword string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

type smtpMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailer creates a new SMTP-backed Mailer
func NewMailer(config SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		config: config,
		logger: logger,
	}
}

// SendCredentialsEmail notifies a newly created user of their initial password
func (m *smtpMailer) SendCredentialsEmail(toEmail, toName, password string) error {
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Str("toEmail", toEmail).
			Str("password", password).
			Msg("SMTP credentials not configured - credentials email not sent. Use the password above for testing.")
		return nil
	}

	subject := "Votre compte StageMed"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Bienvenue sur StageMed</h2>
				<p>Bonjour %s,</p>
				<p>Un compte a été créé pour vous. Votre mot de passe temporaire&nbsp;:</p>
				<p style="text-align: center; font-size: 18px;"><strong>%s</strong></p>
				<p>Vous devrez le changer lors de votre première connexion.</p>
				<p>Cordialement,<br>L'équipe StageMed</p>
			</div>
		</body>
		</html>
	`, toName, password)

	return m.sendHTMLEmail(toEmail, subject, body)
}

// SendPasswordResetEmail notifies a user of their temporary password after a reset
func (m *smtpMailer) SendPasswordResetEmail(toEmail, toName, tempPassword string) error {
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Str("toEmail", toEmail).
			Str("tempPassword", tempPassword).
			Msg("SMTP credentials not configured - reset email not sent. Use the password above for testing.")
		return nil
	}

	subject := "Réinitialisation de votre mot de passe StageMed"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Mot de passe réinitialisé</h2>
				<p>Bonjour %s,</p>
				<p>Votre mot de passe a été réinitialisé. Votre mot de passe temporaire&nbsp;:</p>
				<p style="text-align: center; font-size: 18px;"><strong>%s</strong></p>
				<p>Vous devrez le changer lors de votre prochaine connexion.</p>
				<p>Cordialement,<br>L'équipe StageMed</p>
			</div>
		</body>
		</html>
	`, toName, tempPassword)

	return m.sendHTMLEmail(toEmail, subject, body)
}

func (m *smtpMailer) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)
	err := smtp.SendMail(serverAddress, auth, m.config.FromEmail, []string{toEmail}, []byte(message))
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// GenerateTempPassword generates a random temporary password
func GenerateTempPassword(length int) (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	if length <= 0 {
		length = 12
	}
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", fmt.Errorf("secure random generation failed: %w", err)
		}
		result[i] = chars[n.Int64()]
	}
	return string(result), nil
}

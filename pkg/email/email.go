package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

// sender is satisfied by *gomail.Dialer
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService sends transactional mail via SMTP
type EmailService struct {
	cfg    Config
	dialer sender
}

// StatusEmailData holds the data for application status emails
type StatusEmailData struct {
	To            string
	CandidateName string
	JobTitle      string
	CompanyName   string
	Status        string
}

func NewEmailService(cfg Config) *EmailService {
	return &EmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

const statusEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1f4fd1; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .status { font-weight: bold; text-transform: capitalize; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>HumanCapital</h1>
        </div>
        <div class="content">
            <p>Hello {{.CandidateName}},</p>
            <p>Your application for <strong>{{.JobTitle}}</strong> at {{.CompanyName}} is now
            <span class="status">{{.Status}}</span>.</p>
        </div>
        <div class="footer">
            <p>You receive this email because you applied through HumanCapital.</p>
        </div>
    </div>
</body>
</html>`

var statusTmpl = template.Must(template.New("status").Parse(statusEmailTemplate))

// SendApplicationStatus notifies a candidate that a company changed their application status.
func (s *EmailService) SendApplicationStatus(ctx context.Context, data StatusEmailData) error {
	if !s.IsConfigured() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := statusTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", data.To)
	m.SetHeader("Subject", fmt.Sprintf("Your application for %s was %s", data.JobTitle, strings.ToLower(data.Status)))
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != ""
}

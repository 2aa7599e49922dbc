// Package mailer delivers rendered reports over SMTP. It runs strictly
// after the analytics pass; a delivery failure never affects report
// generation.
package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

type Config struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required"`
	Login    string `mapstructure:"login" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	From     string `mapstructure:"from" validate:"required,email"`
}

// Mailer sends a rendered report to a recipient.
type Mailer interface {
	SendReport(ctx context.Context, to, subject, body string, format domain.ReportFormat) error
}

type smtpMailer struct {
	cfg Config
	// send is swappable in tests; defaults to smtp.SendMail, which
	// upgrades the connection via STARTTLS when the server offers it.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(cfg Config) Mailer {
	return &smtpMailer{cfg: cfg, send: smtp.SendMail}
}

func contentType(format domain.ReportFormat) string {
	if format == domain.FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// buildMessage assembles the RFC 5322 message with encoded headers.
func buildMessage(from, to, subject, body string, format domain.ReportFormat) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: " + contentType(format) + "\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}

func (m *smtpMailer) SendReport(ctx context.Context, to, subject, body string, format domain.ReportFormat) error {
	logger := zerolog.Ctx(ctx)

	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))
	auth := smtp.PlainAuth("", m.cfg.Login, m.cfg.Password, m.cfg.Host)
	msg := buildMessage(m.cfg.From, to, subject, body, format)

	start := time.Now()
	if err := m.send(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send report email to %s: %w", to, err)
	}

	logger.Info().
		Str("to", to).
		Str("format", string(format)).
		Dur("took", time.Since(start)).
		Msg("report email sent")
	return nil
}

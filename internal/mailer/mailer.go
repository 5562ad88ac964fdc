// mailer доставляет одноразовые коды входа.
//
// LogSender пишет код в лог и используется в local/dev;
// SMTPSender отправляет письмо через SMTP-сервер из конфига.
package mailer

//go:generate mockgen -destination=../../mocks/mailer.go -package=mocks github.com/Coullax/disaster-relief-management/internal/mailer Sender

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/Coullax/disaster-relief-management/internal/config"
	"github.com/Coullax/disaster-relief-management/internal/pkg/log"
	"github.com/Coullax/disaster-relief-management/internal/pkg/redact"
)

// Sender — контракт доставки кода.
type Sender interface {
	SendCode(ctx context.Context, email, code string, ttl time.Duration) error
}

// LogSender выводит код в лог вместо отправки.
type LogSender struct{}

func (LogSender) SendCode(ctx context.Context, email, code string, ttl time.Duration) error {
	log.From(ctx).Info("otp_code_issued",
		slog.String("email", redact.Email(email)),
		slog.String("code", code),
		slog.Duration("ttl", ttl),
	)

	return nil
}

// sendMailFunc совпадает с сигнатурой smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender отправляет код письмом.
type SMTPSender struct {
	cfg  config.SMTPConfig
	send sendMailFunc
}

// NewSMTPSender создаёт отправителя по конфигу SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

// SendCode формирует письмо и отправляет его.
// smtp.SendMail не принимает context, поэтому отмена проверяется только перед отправкой.
func (s *SMTPSender) SendCode(ctx context.Context, email, code string, ttl time.Duration) error {
	const op = "mailer/SendCode"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := s.send(s.cfg.Addr(), auth, s.cfg.From, []string{email}, buildMessage(s.cfg.From, email, code, ttl)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func buildMessage(from, to, code string, ttl time.Duration) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Your sign-in code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Your sign-in code is %s.\r\nIt expires in %s.\r\n", code, ttl.Round(time.Second))

	return []byte(b.String())
}

// Проверка выполнения контракта.
var (
	_ Sender = LogSender{}
	_ Sender = (*SMTPSender)(nil)
)

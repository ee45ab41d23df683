// Package mail envia os e-mails transacionais do portal.
package mail

import (
	"context"
	"fmt"

	"github.com/jhoicas/portal-b2b/internal/application/ports"
	"github.com/jhoicas/portal-b2b/pkg/config"
	"github.com/jhoicas/portal-b2b/pkg/logger"
	"gopkg.in/gomail.v2"
)

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*LogMailer)(nil)
)

// sender abstrai o gomail.Dialer nos testes.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer envia via SMTP autenticado.
type SMTPMailer struct {
	from   string
	dialer sender
	log    *logger.Logger
}

// NewSMTPMailer constrói o mailer a partir da configuração.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		log:    log.Component("smtp_mailer"),
	}
}

// Send monta a mensagem (texto e, se houver, HTML alternativo) e envia.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm := buildMessage(m.from, msg)
	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("smtp: enviar para %s: %w", msg.To, err)
	}
	m.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("e-mail enviado")
	return nil
}

func buildMessage(from string, msg ports.MailMessage) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		gm.AddAlternative("text/html", msg.HTMLBody)
	}
	return gm
}

// LogMailer apenas registra o e-mail; usado quando não há SMTP configurado.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Component("log_mailer")}
}

func (m *LogMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Str("body", msg.TextBody).Msg("e-mail não enviado (SMTP desligado)")
	return nil
}

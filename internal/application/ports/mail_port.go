package ports

import "context"

// MailMessage e-mail transacional.
type MailMessage struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer porta de envio de e-mails.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

package email

import (
	"context"
	"fmt"
	"net/smtp"

	"brashfox-backend/internal/config"
)

// ContactNotification is the payload sent to the site admin when the contact
// form is submitted.
type ContactNotification struct {
	Name    string
	Email   string
	Topic   string
	Message string
}

// NotificationSink receives best-effort admin notifications. Callers treat
// failures as non-fatal.
type NotificationSink interface {
	NotifyContactMessage(ctx context.Context, n ContactNotification) error
}

type smtpSink struct {
	addr  string
	from  string
	admin string
}

// NewSMTPSink builds a NotificationSink that delivers over plain SMTP. With no
// admin address configured every notification is a silent no-op.
func NewSMTPSink(cfg config.EmailConfig) NotificationSink {
	return &smtpSink{
		addr:  cfg.SMTPHost + ":" + cfg.SMTPPort,
		from:  cfg.From,
		admin: cfg.AdminEmail,
	}
}

func (s *smtpSink) NotifyContactMessage(ctx context.Context, n ContactNotification) error {
	if s.admin == "" {
		return nil
	}

	subject := fmt.Sprintf("New contact message: %s", n.Topic)
	body := fmt.Sprintf("New contact form submission:\r\n\r\nFrom: %s <%s>\r\nTopic: %s\r\n\r\n%s",
		n.Name, n.Email, n.Topic, n.Message)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, s.admin, subject, body))

	if err := smtp.SendMail(s.addr, nil, s.from, []string{s.admin}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

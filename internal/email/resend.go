package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/config"
)

type resendSender struct {
	client *resend.Client
	from   string
}

func newResendSender(cfg config.EmailConfig) *resendSender {
	return &resendSender{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
	}
}

func (s *resendSender) send(ctx context.Context, to, subject, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("resend send: empty response")
	}
	return nil
}

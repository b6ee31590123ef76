// Package email delivers invitation messages through Resend. When disabled
// the service logs the would-be send and reports success, which keeps the
// invite flow identical in development.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/mail"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/config"
)

var invitationTemplate = template.Must(template.New("invitation").Parse(`<html>
<body>
  <p>{{.InvitedBy}} invited you to the admin console.</p>
  <p><a href="{{.InviteLink}}">Accept your invitation</a></p>
  <p>&copy; {{.CurrentYear}} Admin Console</p>
</body>
</html>`))

type invitationData struct {
	InvitedBy   string
	InviteLink  string
	CurrentYear int
}

type sender interface {
	send(ctx context.Context, to, subject, htmlBody string) error
}

// Service sends transactional console email.
type Service struct {
	config config.EmailConfig
	sender sender
	logger zerolog.Logger
}

// NewService builds the email service. With email disabled no client is
// constructed at all.
func NewService(cfg config.EmailConfig, logger zerolog.Logger) (*Service, error) {
	svc := &Service{
		config: cfg,
		logger: logger.With().Str("component", "email").Logger(),
	}
	if cfg.Enabled {
		if err := validateAddress(cfg.From); err != nil {
			return nil, fmt.Errorf("invalid sender address in config: %w", err)
		}
		svc.sender = newResendSender(cfg)
	}
	return svc, nil
}

// SendInvitation emails an invitation link to a new team member.
func (s *Service) SendInvitation(ctx context.Context, to, inviteLink, invitedBy string) error {
	if err := validateAddress(to); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	if err := validateInviteURL(inviteLink); err != nil {
		return fmt.Errorf("invalid invite link: %w", err)
	}

	if !s.config.Enabled {
		s.logger.Info().
			Str("to", to).
			Str("invited_by", invitedBy).
			Str("link", inviteLink).
			Msg("email disabled, skipping invitation")
		return nil
	}

	body := &bytes.Buffer{}
	if err := invitationTemplate.Execute(body, invitationData{
		InvitedBy:   invitedBy,
		InviteLink:  inviteLink,
		CurrentYear: time.Now().Year(),
	}); err != nil {
		return fmt.Errorf("render invitation: %w", err)
	}

	return s.sender.send(ctx, to, "You have been invited to the admin console", body.String())
}

func validateAddress(address string) error {
	_, err := mail.ParseAddress(address)
	return err
}

// validateInviteURL rejects non-http(s) links so nothing like javascript:
// can end up in a mail body.
func validateInviteURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

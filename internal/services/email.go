package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"weddinginvites/internal/adapters/email"
	"weddinginvites/internal/domain"
)

const (
	invitationTemplate = "invitation"
	invitationImageCID = "invitation_image"
	invitationFilename = "invitation.jpg"
)

type invitationDeliverer struct {
	mailer      domain.Mailer
	renderer    domain.EmailTemplateRenderer
	rsvpFormURL string
	logger      *slog.Logger
}

// NewInvitationDeliverer returns a JobDeliverer that renders the invitation
// email for a job payload and hands it to the mailer.
func NewInvitationDeliverer(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, rsvpFormURL string, logger *slog.Logger) domain.JobDeliverer {
	return &invitationDeliverer{
		mailer:      mailer,
		renderer:    renderer,
		rsvpFormURL: rsvpFormURL,
		logger:      logger,
	}
}

func (s *invitationDeliverer) Deliver(ctx context.Context, job *domain.DispatchJob) error {
	msg, err := s.compose(job.Recipient, job.SenderName, job.Subject, job.Payload)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	return nil
}

// compose builds the invitation message. An image payload is attached inline
// and referenced from the HTML body; a text-only payload is rendered into the body.
func (s *invitationDeliverer) compose(to, senderName, subject string, p domain.DispatchPayload) (*domain.MailMessage, error) {
	data := &domain.InvitationEmailData{
		Subject:     strings.TrimSpace(subject),
		RSVPFormURL: s.rsvpFormURL,
	}
	var attachments []domain.Attachment
	if p.Image != "" {
		contentType, raw, err := email.DecodeDataURL(p.Image)
		switch {
		case err == nil:
			data.HasImage = true
			data.ImageCID = invitationImageCID
			attachments = append(attachments, domain.Attachment{
				Filename:    invitationFilename,
				ContentType: contentType,
				ContentID:   invitationImageCID,
				Data:        raw,
			})
		case p.Text == "":
			return nil, fmt.Errorf("invalid invitation image for %s: %w", to, err)
		default:
			s.logger.Warn("invitation image unreadable, sending text only", "recipient", to, "err", err)
		}
	}
	if !data.HasImage {
		data.InvitationText = p.Text
	}

	renderedSubject, htmlBody, textBody, err := s.renderer.Render(invitationTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render invitation template: %w", err)
	}
	return &domain.MailMessage{
		To:          to,
		FromName:    strings.TrimSpace(senderName),
		Subject:     renderedSubject,
		HTML:        htmlBody,
		Text:        textBody,
		Attachments: attachments,
	}, nil
}

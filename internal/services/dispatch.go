package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"weddinginvites/internal/domain"
)

type dispatchService struct {
	guestRepo      domain.GuestRepository
	dispatcher     domain.Dispatcher
	deliverer      domain.JobDeliverer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDispatchService returns a DispatchService. Scheduled sends go through
// dispatcher; test sends call deliverer directly.
func NewDispatchService(guestRepo domain.GuestRepository, dispatcher domain.Dispatcher, deliverer domain.JobDeliverer, logger *slog.Logger, timeout time.Duration) domain.DispatchService {
	return &dispatchService{
		guestRepo:      guestRepo,
		dispatcher:     dispatcher,
		deliverer:      deliverer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *dispatchService) SendInvitations(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchAck, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	req.SenderName = strings.TrimSpace(req.SenderName)
	req.Subject = strings.TrimSpace(req.Subject)

	guests, err := s.guestRepo.ListDeliverable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}
	recipients := make([]domain.Recipient, 0, len(guests))
	for _, g := range guests {
		recipients = append(recipients, domain.Recipient{
			Address: g.Email,
			Payload: domain.DispatchPayload{Text: g.InvitationText, Image: g.Image},
		})
	}
	return s.dispatcher.Schedule(recipients, req), nil
}

func (s *dispatchService) SendTest(ctx context.Context, to, senderName, subject string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	to = strings.TrimSpace(to)
	if _, err := mail.ParseAddress(to); err != nil {
		return fmt.Errorf("%w: invalid recipient address", domain.ErrInvalidInput)
	}
	guest, err := s.guestRepo.LatestWithImage(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: no guest has an invitation image", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to load invitation image: %w", err)
	}

	job := &domain.DispatchJob{
		ID:         uuid.NewString(),
		Recipient:  to,
		Payload:    domain.DispatchPayload{Image: guest.Image},
		SenderName: strings.TrimSpace(senderName),
		Subject:    strings.TrimSpace(subject),
		FireAt:     time.Now(),
		State:      domain.JobFiring,
	}
	if err := s.deliverer.Deliver(ctx, job); err != nil {
		return fmt.Errorf("failed to send test invitation: %w", err)
	}
	s.logger.InfoContext(ctx, "test invitation sent", "recipient", to, "guest_id", guest.ID)
	return nil
}

func (s *dispatchService) PendingJobs() []*domain.DispatchJob {
	return s.dispatcher.Pending()
}

func (s *dispatchService) CancelJob(jobID string) error {
	return s.dispatcher.Cancel(jobID)
}

package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"weddinginvites/internal/adapters/csvimport"
	"weddinginvites/internal/domain"
	"weddinginvites/internal/metrics"
)

type guestService struct {
	guestRepo      domain.GuestRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewGuestService returns a GuestService backed by the given repository.
func NewGuestService(guestRepo domain.GuestRepository, logger *slog.Logger, timeout time.Duration) domain.GuestService {
	return &guestService{
		guestRepo:      guestRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *guestService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	guests, err := csvimport.Normalize(r)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.guestRepo.BulkCreate(ctx, guests)
	if err != nil {
		return 0, fmt.Errorf("failed to insert guests: %w", err)
	}
	metrics.AddGuestsImported(n)
	s.logger.InfoContext(ctx, "guests imported", "accepted", len(guests), "inserted", n)
	return n, nil
}

func (s *guestService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	guests, total, err := s.guestRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, total, nil
}

func (s *guestService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: guest id is required", domain.ErrInvalidInput)
	}
	return s.guestRepo.Delete(ctx, id)
}

func (s *guestService) SaveInvitationText(ctx context.Context, id, text string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: invitation text is required", domain.ErrInvalidInput)
	}
	return s.guestRepo.UpdateInvitationText(ctx, id, text)
}

func (s *guestService) SaveInvitationImage(ctx context.Context, id, image string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	image = strings.TrimSpace(image)
	if !strings.HasPrefix(image, "data:image/") || !strings.Contains(image, ";base64,") {
		return fmt.Errorf("%w: image must be a base64 image data url", domain.ErrInvalidInput)
	}
	return s.guestRepo.UpdateImage(ctx, id, image)
}

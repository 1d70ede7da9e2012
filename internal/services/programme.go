package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"weddinginvites/internal/domain"
	"weddinginvites/internal/metrics"
)

const (
	programmeStart    = "13:00"
	programmeSlotMins = 30
)

type programmeService struct {
	guestRepo      domain.GuestRepository
	generator      domain.ContentGenerator
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewProgrammeService returns a ProgrammeService that builds one schedule
// from the interests of every guest.
func NewProgrammeService(guestRepo domain.GuestRepository, generator domain.ContentGenerator, logger *slog.Logger, timeout time.Duration) domain.ProgrammeService {
	return &programmeService{
		guestRepo:      guestRepo,
		generator:      generator,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *programmeService) Generate(ctx context.Context, style string) (string, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return "", fmt.Errorf("%w: style is required", domain.ErrInvalidInput)
	}

	listCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	raw, err := s.guestRepo.ListInterests(listCtx)
	cancel()
	if err != nil {
		return "", fmt.Errorf("failed to load interests: %w", err)
	}

	interests := InterestSet(raw)
	outcome := s.generator.Generate(ctx, domain.GenerationRequest{PromptText: programmePrompt(style, interests)})
	if !outcome.OK() {
		metrics.IncGeneration("programme", "failure")
		s.logger.WarnContext(ctx, "programme generation failed", "reason", outcome.Err)
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, outcome.Err)
	}
	metrics.IncGeneration("programme", "success")
	return outcome.Text, nil
}

// InterestSet flattens comma-joined interest fields into their distinct
// trimmed tags, sorted so the result does not depend on guest order.
func InterestSet(fields []string) []string {
	seen := make(map[string]struct{})
	for _, f := range fields {
		for _, tag := range domain.SplitInterests(f) {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func programmePrompt(style string, interests []string) string {
	joined := strings.Join(interests, ", ")
	if joined == "" {
		joined = "none given"
	}
	return fmt.Sprintf("Create a wedding programme as a timeline that matches the wedding style and the guests' interests below.\n\n"+
		"Wedding style: %s\n"+
		"Guest interests: %s\n\n"+
		"Start at %s and plan one item every %d minutes, blending the style with the interests in a warm, natural tone.\n"+
		"Output the programme as an HTML <table> with two columns, time and activity, and keep the text within the table width.",
		style, joined, programmeStart, programmeSlotMins)
}

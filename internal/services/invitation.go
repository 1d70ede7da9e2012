package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"weddinginvites/internal/domain"
	"weddinginvites/internal/metrics"
)

const defaultTone = "warm"

type invitationService struct {
	guestRepo      domain.GuestRepository
	generator      domain.ContentGenerator
	concurrency    int
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewInvitationService returns an InvitationService that runs at most
// concurrency generation calls at a time.
func NewInvitationService(guestRepo domain.GuestRepository, generator domain.ContentGenerator, concurrency int, logger *slog.Logger, timeout time.Duration) domain.InvitationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &invitationService{
		guestRepo:      guestRepo,
		generator:      generator,
		concurrency:    concurrency,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *invitationService) GenerateBatch(ctx context.Context, details domain.EventDetails, guestIDs []string) ([]*domain.GeneratedInvitation, error) {
	details, err := normalizeDetails(details)
	if err != nil {
		return nil, err
	}

	listCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	guests, err := s.guestRepo.ListAll(listCtx, guestIDs)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}

	results := make([]*domain.GeneratedInvitation, len(guests))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, guest := range guests {
		g.Go(func() error {
			outcome := s.generator.Generate(ctx, domain.GenerationRequest{PromptText: guestPrompt(guest, details)})
			text := outcome.Text
			if !outcome.OK() {
				text = domain.InvitationFailedText
				metrics.IncGeneration("invitation_batch", "failure")
				s.logger.WarnContext(ctx, "invitation generation failed", "guest_id", guest.ID, "reason", outcome.Err)
			} else {
				metrics.IncGeneration("invitation_batch", "success")
			}
			results[i] = &domain.GeneratedInvitation{
				GuestID:        guest.ID,
				Name:           guest.Name,
				Relation:       guest.Relation,
				InvitationText: text,
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "invitation batch generated", "guests", len(results), "failed", failed)
	return results, nil
}

func (s *invitationService) GenerateOne(ctx context.Context, details domain.EventDetails) (string, error) {
	details, err := normalizeDetails(details)
	if err != nil {
		return "", err
	}
	outcome := s.generator.Generate(ctx, domain.GenerationRequest{PromptText: invitationPrompt(details)})
	if !outcome.OK() {
		metrics.IncGeneration("invitation", "failure")
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, outcome.Err)
	}
	metrics.IncGeneration("invitation", "success")
	return outcome.Text, nil
}

func normalizeDetails(d domain.EventDetails) (domain.EventDetails, error) {
	d = domain.EventDetails{
		Groom: strings.TrimSpace(d.Groom),
		Bride: strings.TrimSpace(d.Bride),
		Date:  strings.TrimSpace(d.Date),
		Place: strings.TrimSpace(d.Place),
		Tone:  strings.TrimSpace(d.Tone),
	}
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"groom", d.Groom}, {"bride", d.Bride}, {"date", d.Date}, {"place", d.Place},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return d, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if d.Tone == "" {
		d.Tone = defaultTone
	}
	return d, nil
}

func guestPrompt(g *domain.Guest, d domain.EventDetails) string {
	relation := g.Relation
	if relation == "" {
		relation = "guest"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s is my dear %s", g.Name, relation)
	if g.Interest != "" {
		fmt.Fprintf(&b, " who enjoys %s", g.Interest)
	}
	fmt.Fprintf(&b, ". Write a warm, conversational wedding invitation for %s in a %s style. ", g.Name, d.Tone)
	fmt.Fprintf(&b, "The wedding of %s and %s takes place on %s at %s. ", d.Groom, d.Bride, d.Date, d.Place)
	fmt.Fprintf(&b, "Address the guest by name and do not leave placeholders such as [Guest Name].")
	return b.String()
}

func invitationPrompt(d domain.EventDetails) string {
	return fmt.Sprintf("We are getting married on %s at %s.\n\n"+
		"Write a wedding invitation that sounds natural, warm and heartfelt, as if talking to a friend. "+
		"Mention the groom %s and the bride %s. The theme of the wedding is %q.\n\n"+
		"Keep it casual rather than formal.", d.Date, d.Place, d.Groom, d.Bride, d.Tone)
}

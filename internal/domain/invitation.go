package domain

import "context"

// InvitationFailedText replaces the invitation text of a guest whose generation failed.
const InvitationFailedText = "generation failed"

// EventDetails are the wedding parameters shared by every invitation of a batch.
type EventDetails struct {
	Groom string
	Bride string
	Date  string
	Place string
	Tone  string
}

// GeneratedInvitation is the per-guest result of a batch generation.
// swagger:model GeneratedInvitation
type GeneratedInvitation struct {
	GuestID        string `json:"guest_id"`
	Name           string `json:"name"`
	Relation       string `json:"relation"`
	InvitationText string `json:"invitation_text"`
}

// Failed reports whether the entry carries the failure placeholder instead of generated text.
func (g *GeneratedInvitation) Failed() bool {
	return g.InvitationText == InvitationFailedText
}

// InvitationService generates invitation texts.
type InvitationService interface {
	// GenerateBatch returns exactly one entry per selected guest, in store order.
	// guestIDs restricts the batch; empty means every guest. The only error is a
	// failure to read the guest list; per-guest generation failures are embedded
	// as InvitationFailedText.
	GenerateBatch(ctx context.Context, details EventDetails, guestIDs []string) ([]*GeneratedInvitation, error)
	// GenerateOne returns a single generic invitation, or ErrGenerationFailed.
	GenerateOne(ctx context.Context, details EventDetails) (string, error)
}

// ProgrammeService produces the event schedule from the guests' interests.
type ProgrammeService interface {
	// Generate returns the formatted schedule, or ErrGenerationFailed.
	Generate(ctx context.Context, style string) (string, error)
}

package domain

import (
	"context"
	"io"
	"strings"
	"time"
)

// Guest is one invitee: contact data, relation to the couple, interest tags
// and the invitation content generated for them.
// swagger:model Guest
type Guest struct {
	ID             string    `json:"guest_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Relation       string    `json:"relation"`
	Interest       string    `json:"interest"`
	InvitationText string    `json:"invitation_text"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewGuest returns a Guest with every field trimmed. Relation and interest
// default to the empty string. ID is set by the repository on create.
func NewGuest(name, email, relation, interest string) *Guest {
	return &Guest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Relation: strings.TrimSpace(relation),
		Interest: strings.TrimSpace(interest),
	}
}

// Valid reports whether both name and email are non-empty after trimming.
func (g *Guest) Valid() bool {
	return strings.TrimSpace(g.Name) != "" && strings.TrimSpace(g.Email) != ""
}

// Interests splits the comma-joined interest field into trimmed, non-empty tags.
func (g *Guest) Interests() []string {
	return SplitInterests(g.Interest)
}

// HasContent reports whether the guest has something to deliver: a rendered
// invitation image or a generated invitation text.
func (g *Guest) HasContent() bool {
	return g.Image != "" || g.InvitationText != ""
}

// SplitInterests splits a comma-joined tag string into trimmed, non-empty tags.
func SplitInterests(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// GuestRepository defines storage operations for guests.
type GuestRepository interface {
	// BulkCreate inserts all guests atomically and returns the number of rows written.
	BulkCreate(ctx context.Context, guests []*Guest) (int, error)
	List(ctx context.Context, params PaginationParams) ([]*Guest, int, error)
	// ListAll returns every guest in insertion order, or only those with the given ids when ids is non-empty.
	ListAll(ctx context.Context, ids []string) ([]*Guest, error)
	// ListInterests returns the raw interest field of every guest.
	ListInterests(ctx context.Context) ([]string, error)
	// ListDeliverable returns guests that have an invitation image or text.
	ListDeliverable(ctx context.Context) ([]*Guest, error)
	// LatestWithImage returns the most recently created guest that has an invitation image.
	LatestWithImage(ctx context.Context) (*Guest, error)
	UpdateInvitationText(ctx context.Context, id, text string) error
	UpdateImage(ctx context.Context, id, image string) error
	Delete(ctx context.Context, id string) error
}

// GuestService defines guest list management: CSV import, listing, removal
// and attaching generated artifacts.
type GuestService interface {
	// ImportCSV normalizes the CSV stream and bulk-inserts the result.
	// Returns ErrNoValidRows when nothing usable was found.
	ImportCSV(ctx context.Context, r io.Reader) (int, error)
	List(ctx context.Context, params PaginationParams) ([]*Guest, int, error)
	Delete(ctx context.Context, id string) error
	SaveInvitationText(ctx context.Context, id, text string) error
	SaveInvitationImage(ctx context.Context, id, image string) error
}

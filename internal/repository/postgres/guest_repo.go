package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"weddinginvites/internal/domain"
)

// bulkInsertChunk bounds the rows per INSERT statement, keeping parameter
// counts well under the protocol limit of 65535.
const bulkInsertChunk = 500

const guestColumns = `id, name, email, relation, interest, invitation_text, image, created_at`

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) BulkCreate(ctx context.Context, guests []*domain.Guest) (int, error) {
	if len(guests) == 0 {
		return 0, nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	written := 0
	for start := 0; start < len(guests); start += bulkInsertChunk {
		end := min(start+bulkInsertChunk, len(guests))
		query, args := bulkInsertQuery(guests[start:end])
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("insert guests %d-%d: %w", start, end, err)
		}
		n, _ := result.RowsAffected()
		written += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

func bulkInsertQuery(guests []*domain.Guest) (string, []any) {
	var b strings.Builder
	b.WriteString(`INSERT INTO guests (name, email, relation, interest) VALUES `)
	args := make([]any, 0, len(guests)*4)
	for i, g := range guests {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, g.Name, g.Email, g.Relation, g.Interest)
	}
	return b.String(), args
}

func (r *guestRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM guests`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		ORDER BY seq DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	guests, err := scanGuests(rows)
	if err != nil {
		return nil, 0, err
	}
	return guests, total, nil
}

func (r *guestRepository) ListAll(ctx context.Context, ids []string) ([]*domain.Guest, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(ids) == 0 {
		rows, err = r.DB.QueryContext(ctx, `SELECT `+guestColumns+` FROM guests ORDER BY seq ASC`)
	} else {
		rows, err = r.DB.QueryContext(ctx, `SELECT `+guestColumns+` FROM guests WHERE id = ANY($1) ORDER BY seq ASC`, pq.Array(ids))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGuests(rows)
}

func (r *guestRepository) ListInterests(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT interest FROM guests WHERE interest <> '' ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	interests := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		interests = append(interests, s)
	}
	return interests, rows.Err()
}

func (r *guestRepository) ListDeliverable(ctx context.Context) ([]*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE image <> '' OR invitation_text <> ''
		ORDER BY seq ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGuests(rows)
}

func (r *guestRepository) LatestWithImage(ctx context.Context) (*domain.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE image <> ''
		ORDER BY seq DESC
		LIMIT 1
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&g.ID, &g.Name, &g.Email, &g.Relation, &g.Interest, &g.InvitationText, &g.Image, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// UpdateInvitationText overwrites unconditionally; concurrent writers race and the last one wins.
func (r *guestRepository) UpdateInvitationText(ctx context.Context, id, text string) error {
	return r.execOne(ctx, `UPDATE guests SET invitation_text = $2 WHERE id = $1`, id, text)
}

func (r *guestRepository) UpdateImage(ctx context.Context, id, image string) error {
	return r.execOne(ctx, `UPDATE guests SET image = $2 WHERE id = $1`, id, image)
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM guests WHERE id = $1`, id)
}

func (r *guestRepository) execOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		// a malformed uuid can never match a row
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "22P02" {
			return domain.ErrNotFound
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanGuests(rows *sql.Rows) ([]*domain.Guest, error) {
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Relation, &g.Interest, &g.InvitationText, &g.Image, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

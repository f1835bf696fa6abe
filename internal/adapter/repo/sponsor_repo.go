package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/sqlinline"
)

// SponsorRepositoryPG implements domain.SponsorRepository using PostgreSQL.
type SponsorRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSponsorRepository creates a new sponsor repo.
func NewSponsorRepository(sql infra.SQLExecutor) *SponsorRepositoryPG {
	return &SponsorRepositoryPG{sql: sql}
}

// Create inserts a new sponsor record keyed by the composite id.
func (r *SponsorRepositoryPG) Create(ctx context.Context, s *domain.Sponsor) error {
	if s.ID.IsZero() {
		return domain.ErrInvalidSponsorID
	}
	_, err := r.sql.Exec(ctx, sqlinline.QInsertSponsor,
		s.ID.Cluster, s.ID.Specific, s.FullName, s.Phone, s.Email, s.Address,
		s.MonthlyAmountInt, string(s.Status), s.Diaspora, s.Locale, s.AgreedDate)
	return err
}

// Update rewrites the mutable sponsor attributes.
func (r *SponsorRepositoryPG) Update(ctx context.Context, s *domain.Sponsor) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateSponsor,
		s.ID.Cluster, s.ID.Specific, s.FullName, s.Phone, s.Email, s.Address,
		s.MonthlyAmountInt, s.Diaspora, s.Locale)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches a sponsor by the composite key; both halves must match.
func (r *SponsorRepositoryPG) GetByID(ctx context.Context, id domain.SponsorID) (*domain.Sponsor, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectSponsorByID, id.Cluster, id.Specific)
	return scanSponsor(row)
}

// List returns a page of sponsors, optionally filtered by status.
func (r *SponsorRepositoryPG) List(ctx context.Context, status domain.SponsorStatus, limit, offset int) ([]domain.Sponsor, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListSponsors, string(status), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSponsors(rows)
}

// ListActive returns every active sponsor, the population the daily
// reconciliation sweep iterates.
func (r *SponsorRepositoryPG) ListActive(ctx context.Context) ([]domain.Sponsor, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListActiveSponsors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSponsors(rows)
}

// SetStatus moves a sponsor between active/inactive/pending.
func (r *SponsorRepositoryPG) SetStatus(ctx context.Context, id domain.SponsorID, status domain.SponsorStatus) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QSetSponsorStatus, id.Cluster, id.Specific, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectSponsors(rows pgx.Rows) ([]domain.Sponsor, error) {
	var items []domain.Sponsor
	for rows.Next() {
		s, err := scanSponsorFrom(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanSponsor(row pgx.Row) (*domain.Sponsor, error) {
	s, err := scanSponsorFrom(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan sponsor: %w", err)
	}
	return s, nil
}

func scanSponsorFrom(row pgx.Row) (*domain.Sponsor, error) {
	var s domain.Sponsor
	var status string
	if err := row.Scan(&s.ID.Cluster, &s.ID.Specific, &s.FullName, &s.Phone, &s.Email, &s.Address,
		&s.MonthlyAmountInt, &status, &s.Diaspora, &s.Locale, &s.AgreedDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = domain.SponsorStatus(status)
	return &s, nil
}

var _ domain.SponsorRepository = (*SponsorRepositoryPG)(nil)

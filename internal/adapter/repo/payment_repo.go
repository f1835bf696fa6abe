package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/sqlinline"
)

// PaymentRepositoryPG implements domain.PaymentRepository using PostgreSQL.
type PaymentRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewPaymentRepository creates a new payment repo.
func NewPaymentRepository(sql infra.SQLExecutor) *PaymentRepositoryPG {
	return &PaymentRepositoryPG{sql: sql}
}

// Create inserts a pending payment covering the given month span.
func (r *PaymentRepositoryPG) Create(ctx context.Context, p *domain.Payment) error {
	if !p.ValidPeriod() {
		return domain.ErrInvalidPeriod
	}
	_, err := r.sql.Exec(ctx, sqlinline.QInsertPayment,
		p.ID, p.SponsorID.Cluster, p.SponsorID.Specific,
		p.StartMonth, p.EndMonth, p.Year, p.AmountInt)
	return err
}

// GetByID fetches one payment.
func (r *PaymentRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectPaymentByID, id)
	p, err := scanPayment(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListBySponsor returns all payments for a sponsor, newest coverage first.
func (r *PaymentRepositoryPG) ListBySponsor(ctx context.Context, sponsorID domain.SponsorID) ([]domain.Payment, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPaymentsBySponsor, sponsorID.Cluster, sponsorID.Specific)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

// ListConfirmedBySponsor returns only confirmed payments, the input to the
// payment history reducer.
func (r *PaymentRepositoryPG) ListConfirmedBySponsor(ctx context.Context, sponsorID domain.SponsorID) ([]domain.Payment, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListConfirmedPaymentsBySponsor, sponsorID.Cluster, sponsorID.Specific)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

// Confirm flips a pending payment to confirmed and records who did it.
// Confirming an already-confirmed payment returns ErrAlreadyConfirmed.
func (r *PaymentRepositoryPG) Confirm(ctx context.Context, id, employeeID string, at time.Time) (*domain.Payment, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QConfirmPayment, id, employeeID, at)
	p, err := scanPayment(row)
	if err != nil {
		if infra.IsNoRows(err) {
			if _, getErr := r.GetByID(ctx, id); getErr == nil {
				return nil, domain.ErrAlreadyConfirmed
			}
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var items []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var status string
	if err := row.Scan(&p.ID, &p.SponsorID.Cluster, &p.SponsorID.Specific,
		&p.StartMonth, &p.EndMonth, &p.Year, &p.AmountInt, &status,
		&p.ConfirmedAt, &p.ConfirmedBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Status = domain.PaymentStatus(status)
	return &p, nil
}

var _ domain.PaymentRepository = (*PaymentRepositoryPG)(nil)

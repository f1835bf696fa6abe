package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"maryjoy/internal/domain"
	"maryjoy/internal/infra"
	"maryjoy/internal/sqlinline"
)

// EmployeeRepositoryPG implements domain.EmployeeRepository using PostgreSQL.
type EmployeeRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewEmployeeRepository creates a new employee repo.
func NewEmployeeRepository(sql infra.SQLExecutor) *EmployeeRepositoryPG {
	return &EmployeeRepositoryPG{sql: sql}
}

// GetByEmail fetches an employee account for login.
func (r *EmployeeRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return scanEmployee(r.sql.QueryRow(ctx, sqlinline.QSelectEmployeeByEmail, email))
}

// GetByID fetches an employee account.
func (r *EmployeeRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return scanEmployee(r.sql.QueryRow(ctx, sqlinline.QSelectEmployeeByID, id))
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	var role string
	if err := row.Scan(&e.ID, &e.FullName, &e.Email, &e.PasswordHash, &role,
		&e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	e.Role = domain.EmployeeRole(role)
	return &e, nil
}

var _ domain.EmployeeRepository = (*EmployeeRepositoryPG)(nil)

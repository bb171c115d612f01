package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// LeaveRepository encapsulates leave request persistence.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.LeaveRequest) error
	Update(ctx context.Context, leave *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	ListAll(ctx context.Context) ([]domain.LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository instantiates repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

const leaveColumns = `id, user_id, status, from_date, to_date, category, reason, decided_by, created_at, updated_at`

func (r *leaveRepository) Create(ctx context.Context, leave *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests (user_id, status, from_date, to_date, category, reason)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		leave.UserID,
		leave.Status,
		leave.FromDate,
		leave.ToDate,
		leave.Category,
		leave.Reason,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
}

func (r *leaveRepository) Update(ctx context.Context, leave *domain.LeaveRequest) error {
	const query = `
        UPDATE leave_requests SET status=$1, from_date=$2, to_date=$3, category=$4, reason=$5, decided_by=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		leave.Status,
		leave.FromDate,
		leave.ToDate,
		leave.Category,
		leave.Reason,
		leave.DecidedBy,
		leave.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id=$1`
	var leave domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&leave.ID,
		&leave.UserID,
		&leave.Status,
		&leave.FromDate,
		&leave.ToDate,
		&leave.Category,
		&leave.Reason,
		&leave.DecidedBy,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leave_requests ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaves(rows)
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]domain.LeaveRequest, error) {
	const query = `SELECT ` + leaveColumns + ` FROM leave_requests WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaves(rows)
}

func scanLeaves(rows pgx.Rows) ([]domain.LeaveRequest, error) {
	var result []domain.LeaveRequest
	for rows.Next() {
		var leave domain.LeaveRequest
		if err := rows.Scan(
			&leave.ID,
			&leave.UserID,
			&leave.Status,
			&leave.FromDate,
			&leave.ToDate,
			&leave.Category,
			&leave.Reason,
			&leave.DecidedBy,
			&leave.CreatedAt,
			&leave.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, leave)
	}
	return result, rows.Err()
}

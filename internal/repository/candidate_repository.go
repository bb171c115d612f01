package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// CandidateFilter captures coarse persistence-level filters. The per-viewer
// visibility rules and multi-field criteria are applied in memory by the
// visibility package; the repository only narrows the fetched set.
type CandidateFilter struct {
	JobID     *string
	CreatedBy *string
	Status    *domain.CandidateStatus
	Limit     int
	Offset    int
}

// CandidateRepository encapsulates candidate persistence.
type CandidateRepository interface {
	Create(ctx context.Context, cand *domain.Candidate) error
	Update(ctx context.Context, cand *domain.Candidate) error
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
	ListAll(ctx context.Context) ([]domain.Candidate, error)
	ListWithFilter(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error)
}

type candidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository instantiates repository.
func NewCandidateRepository(pool *pgxpool.Pool) CandidateRepository {
	return &candidateRepository{pool: pool}
}

const candidateColumns = `id, job_id, created_by, name, email, phone, skills, status, stage, fields, created_at, updated_at`

func (r *candidateRepository) Create(ctx context.Context, cand *domain.Candidate) error {
	const query = `
        INSERT INTO candidates (job_id, created_by, name, email, phone, skills, status, stage, fields)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		cand.JobID,
		cand.CreatedBy,
		cand.Name,
		cand.Email,
		cand.Phone,
		cand.Skills,
		cand.Status,
		cand.Stage,
		cand.Fields,
	).Scan(&cand.ID, &cand.CreatedAt, &cand.UpdatedAt)
}

func (r *candidateRepository) Update(ctx context.Context, cand *domain.Candidate) error {
	const query = `
        UPDATE candidates SET job_id=$1, name=$2, email=$3, phone=$4, skills=$5,
            status=$6, stage=$7, fields=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		cand.JobID,
		cand.Name,
		cand.Email,
		cand.Phone,
		cand.Skills,
		cand.Status,
		cand.Stage,
		cand.Fields,
		cand.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	const query = `SELECT ` + candidateColumns + ` FROM candidates WHERE id=$1`
	var cand domain.Candidate
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&cand.ID,
		&cand.JobID,
		&cand.CreatedBy,
		&cand.Name,
		&cand.Email,
		&cand.Phone,
		&cand.Skills,
		&cand.Status,
		&cand.Stage,
		&cand.Fields,
		&cand.CreatedAt,
		&cand.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &cand, nil
}

func (r *candidateRepository) ListAll(ctx context.Context) ([]domain.Candidate, error) {
	const query = `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func (r *candidateRepository) ListWithFilter(ctx context.Context, filter CandidateFilter) ([]domain.Candidate, error) {
	base := `SELECT ` + candidateColumns + ` FROM candidates`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		clauses = append(clauses, fmt.Sprintf("job_id=$%d", len(args)))
	}
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		clauses = append(clauses, fmt.Sprintf("created_by=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC`,
		base, strings.Join(clauses, " AND "))
	if filter.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, filter.Limit)
	}
	if filter.Offset > 0 {
		query = fmt.Sprintf("%s OFFSET %d", query, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for rows.Next() {
		var cand domain.Candidate
		if err := rows.Scan(
			&cand.ID,
			&cand.JobID,
			&cand.CreatedBy,
			&cand.Name,
			&cand.Email,
			&cand.Phone,
			&cand.Skills,
			&cand.Status,
			&cand.Stage,
			&cand.Fields,
			&cand.CreatedAt,
			&cand.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, cand)
	}
	return result, rows.Err()
}

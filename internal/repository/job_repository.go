package repository

import (
	"context"
	"errors"
	"strings"

	"jobboard-ai/internal/database"
	"jobboard-ai/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobRepository resolves postings and lists the active ones for bulk scoring
// and the recommendation fallback.
type JobRepository interface {
	FindByID(ctx context.Context, id string) (job.Posting, error)
	ListActive(ctx context.Context) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobSelectColumns = `j.id, j.title, COALESCE(j.description, ''), COALESCE(c.name, ''),
	COALESCE(j.location, ''), COALESCE(j.job_type, ''), COALESCE(j.seniority_level, ''),
	COALESCE(j.industry, ''), COALESCE(j.required_skills, '{}'), COALESCE(j.preferred_skills, '{}'),
	j.status, j.created_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id string) (job.Posting, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return job.Posting{}, job.ErrNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+jobSelectColumns+`
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1`,
		jobID,
	)

	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobSelectColumns+`
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE j.status = $1
		 ORDER BY j.created_at ASC`,
		job.StatusActive,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.CompanyName,
		&p.Location, &p.JobType, &p.SeniorityLevel,
		&p.Industry, &p.RequiredSkills, &p.PreferredSkills,
		&p.Status, &p.CreatedAt,
	)
	return p, err
}

package repository

import (
	"context"
	"errors"
	"strings"

	"jobboard-ai/internal/database"
	"jobboard-ai/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository resolves opaque user identifiers to full profiles.
// A malformed identifier resolves the same way as an unknown one: the core
// treats both as absence of the profile.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (profile.UserProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByID(ctx context.Context, id string) (profile.UserProfile, error) {
	userID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return profile.UserProfile{}, profile.ErrNotFound
	}

	var p profile.UserProfile
	row := r.db.QueryRow(ctx,
		`SELECT id, email FROM users WHERE id = $1`,
		userID,
	)
	if err := row.Scan(&p.ID, &p.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.UserProfile{}, profile.ErrNotFound
		}
		return profile.UserProfile{}, err
	}

	if p.Skills, err = r.findSkills(ctx, userID); err != nil {
		return profile.UserProfile{}, err
	}
	if p.Experience, err = r.findExperience(ctx, userID); err != nil {
		return profile.UserProfile{}, err
	}
	if p.Projects, err = r.findProjects(ctx, userID); err != nil {
		return profile.UserProfile{}, err
	}
	if p.Preferences, err = r.findPreferences(ctx, userID); err != nil {
		return profile.UserProfile{}, err
	}

	return p, nil
}

func (r *PostgresProfileRepository) findSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill FROM user_skills WHERE user_id = $1 ORDER BY position ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) findExperience(ctx context.Context, userID uuid.UUID) ([]profile.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT title, COALESCE(years, 0), COALESCE(description, '')
		 FROM user_experience
		 WHERE user_id = $1
		 ORDER BY position ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Experience, 0)
	for rows.Next() {
		var e profile.Experience
		if err := rows.Scan(&e.Title, &e.Years, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) findProjects(ctx context.Context, userID uuid.UUID) ([]profile.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(description, '')
		 FROM user_projects
		 WHERE user_id = $1
		 ORDER BY position ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Project, 0)
	for rows.Next() {
		var p profile.Project
		if err := rows.Scan(&p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) findPreferences(ctx context.Context, userID uuid.UUID) (profile.Preferences, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(preferred_locations, '{}'),
		        COALESCE(preferred_job_types, '{}'),
		        COALESCE(preferred_seniority_levels, '{}'),
		        COALESCE(preferred_industries, '{}')
		 FROM user_preferences
		 WHERE user_id = $1`,
		userID,
	)

	var prefs profile.Preferences
	err := row.Scan(&prefs.Locations, &prefs.JobTypes, &prefs.SeniorityLevels, &prefs.Industries)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Preferences{}, nil
		}
		return profile.Preferences{}, err
	}
	return prefs, nil
}

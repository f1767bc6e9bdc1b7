// Package db provides optional PostgreSQL caching of resume profiles
// and match results. The engine never requires it: scoring is
// deterministic, so memoization keyed by (resume, job, taxonomy
// version) is always valid.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the cache tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_profiles (
			resume_id UUID PRIMARY KEY,
			taxonomy_version TEXT NOT NULL,
			profile JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS match_results (
			resume_id UUID NOT NULL,
			job_id UUID NOT NULL,
			taxonomy_version TEXT NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (resume_id, job_id, taxonomy_version)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveProfile upserts the active profile for a resume. Each analysis
// run supersedes the previous profile; exactly one row per resume.
func (s *Store) SaveProfile(ctx context.Context, resumeID uuid.UUID, taxonomyVersion string, profile *types.ResumeProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_profiles (resume_id, taxonomy_version, profile, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (resume_id)
		 DO UPDATE SET taxonomy_version = $2, profile = $3, updated_at = NOW()`,
		resumeID, taxonomyVersion, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile returns the cached profile for a resume at the given
// taxonomy version, or nil when absent or computed against a
// different catalog revision.
func (s *Store) GetProfile(ctx context.Context, resumeID uuid.UUID, taxonomyVersion string) (*types.ResumeProfile, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM resume_profiles
		 WHERE resume_id = $1 AND taxonomy_version = $2`,
		resumeID, taxonomyVersion,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// SaveMatch caches one match result.
func (s *Store) SaveMatch(ctx context.Context, resumeID, jobID uuid.UUID, taxonomyVersion string, result *types.MatchResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO match_results (resume_id, job_id, taxonomy_version, result, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (resume_id, job_id, taxonomy_version)
		 DO UPDATE SET result = $4, created_at = NOW()`,
		resumeID, jobID, taxonomyVersion, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}
	return nil
}

// GetMatch returns a cached match result, or nil when absent.
func (s *Store) GetMatch(ctx context.Context, resumeID, jobID uuid.UUID, taxonomyVersion string) (*types.MatchResult, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT result FROM match_results
		 WHERE resume_id = $1 AND job_id = $2 AND taxonomy_version = $3`,
		resumeID, jobID, taxonomyVersion,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load match result: %w", err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}
	return &result, nil
}

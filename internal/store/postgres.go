package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hireloop/candidatehub/pkg/models"
)

// defaultScanBatchSize bounds how many rows a single scan page fetches.
// Scans loop until a short page is returned, so results are always complete.
const defaultScanBatchSize = 250

const candidateColumns = `job_id, candidate_id, name, email,
	resume_object_key, parsed_object_key, questions_object_key,
	jd_score, cultural_fit_score, uniqueness_score, custom_criteria_score, absolute_score,
	"status", verdict_comment, ingested_at`

// PostgresStore implements the Store interface using pgx/v5.
type PostgresStore struct {
	pool      *pgxpool.Pool
	batchSize int
}

// Option configures a PostgresStore.
type Option func(*PostgresStore)

// WithScanBatchSize overrides the page size used by list scans.
func WithScanBatchSize(n int) Option {
	return func(s *PostgresStore) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool, opts ...Option) *PostgresStore {
	s := &PostgresStore{pool: pool, batchSize: defaultScanBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) GetCandidate(ctx context.Context, jobID, candidateID string) (*models.Candidate, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID)

	c, err := scanCandidate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListByScoreRange(ctx context.Context, minScore, maxScore float64, status string) ([]*models.Candidate, error) {
	conditions := []string{
		"absolute_score IS NOT NULL",
		"absolute_score >= $1",
		"absolute_score <= $2",
	}
	args := []any{minScore, maxScore}
	if status != "" {
		conditions = append(conditions, `"status" = $3`)
		args = append(args, status)
	}

	candidates, err := s.scanAll(ctx, strings.Join(conditions, " AND "), args)
	if err != nil {
		return nil, fmt.Errorf("list by score range: %w", err)
	}
	return candidates, nil
}

func (s *PostgresStore) ListByJob(ctx context.Context, jobID string) ([]*models.Candidate, error) {
	where := `job_id = $1 AND "status" = ANY($2)`
	args := []any{jobID, []string{models.StatusAccepted, models.StatusInConsideration}}

	candidates, err := s.scanAll(ctx, where, args)
	if err != nil {
		return nil, fmt.Errorf("list by job: %w", err)
	}
	return candidates, nil
}

// scanAll pages through all rows matching where, keyset-ordered on the
// composite primary key, and accumulates them before returning.
func (s *PostgresStore) scanAll(ctx context.Context, where string, args []any) ([]*models.Candidate, error) {
	var (
		all      []*models.Candidate
		lastJob  string
		lastCand string
		paging   bool
	)

	base := len(args)
	for {
		query := `SELECT ` + candidateColumns + ` FROM candidates WHERE ` + where
		pageArgs := args
		if paging {
			query += fmt.Sprintf(" AND (job_id, candidate_id) > ($%d, $%d)", base+1, base+2)
			pageArgs = append(append([]any{}, args...), lastJob, lastCand)
		}
		query += " ORDER BY job_id, candidate_id LIMIT " + fmt.Sprint(s.batchSize)

		rows, err := s.pool.Query(ctx, query, pageArgs...)
		if err != nil {
			return nil, err
		}

		var page []*models.Candidate
		for rows.Next() {
			c, err := scanCandidate(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan candidate: %w", err)
			}
			page = append(page, c)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < s.batchSize {
			return all, nil
		}
		last := page[len(page)-1]
		lastJob, lastCand = last.JobID, last.CandidateID
		paging = true
	}
}

func (s *PostgresStore) UpdateCandidate(ctx context.Context, jobID, candidateID string, opts ...CandidateUpdate) error {
	params := &candidateUpdateParams{}
	for _, opt := range opts {
		opt(params)
	}

	var sets []string
	args := []any{jobID, candidateID}
	argIdx := 3

	if params.Status != nil {
		sets = append(sets, fmt.Sprintf(`"status" = $%d`, argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.VerdictComment != nil {
		sets = append(sets, fmt.Sprintf("verdict_comment = $%d", argIdx))
		args = append(args, *params.VerdictComment)
		argIdx++
	}
	if params.QuestionsKey != nil {
		sets = append(sets, fmt.Sprintf("questions_object_key = $%d", argIdx))
		args = append(args, *params.QuestionsKey)
		argIdx++
	}

	if len(sets) == 0 {
		return fmt.Errorf("update candidate: no fields to update")
	}

	query := "UPDATE candidates SET " + strings.Join(sets, ", ") +
		" WHERE job_id = $1 AND candidate_id = $2"

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) PutCandidate(ctx context.Context, c *models.Candidate) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (job_id, candidate_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   email = EXCLUDED.email,
		   resume_object_key = EXCLUDED.resume_object_key,
		   parsed_object_key = EXCLUDED.parsed_object_key,
		   questions_object_key = EXCLUDED.questions_object_key,
		   jd_score = EXCLUDED.jd_score,
		   cultural_fit_score = EXCLUDED.cultural_fit_score,
		   uniqueness_score = EXCLUDED.uniqueness_score,
		   custom_criteria_score = EXCLUDED.custom_criteria_score,
		   absolute_score = EXCLUDED.absolute_score,
		   "status" = EXCLUDED."status",
		   verdict_comment = EXCLUDED.verdict_comment`,
		c.JobID, c.CandidateID, c.Name, c.Email,
		c.ResumeObjectKey, c.ParsedObjectKey, c.QuestionsObjectKey,
		c.JDScore, c.CulturalFitScore, c.UniquenessScore, c.CustomCriteriaScore, c.AbsoluteScore,
		c.Status, c.VerdictComment, c.IngestedAt)
	if err != nil {
		return fmt.Errorf("put candidate: %w", err)
	}
	return nil
}

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	var c models.Candidate
	err := row.Scan(&c.JobID, &c.CandidateID, &c.Name, &c.Email,
		&c.ResumeObjectKey, &c.ParsedObjectKey, &c.QuestionsObjectKey,
		&c.JDScore, &c.CulturalFitScore, &c.UniquenessScore, &c.CustomCriteriaScore, &c.AbsoluteScore,
		&c.Status, &c.VerdictComment, &c.IngestedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

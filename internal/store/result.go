package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// QuizResult records one completed quiz.
type QuizResult struct {
	ID         int
	Timestamp  time.Time
	Category   string
	Difficulty string
	Score      int
	Total      int
	XPEarned   int
	Passed     bool
}

// ResultRepo provides append and query access to quiz completion history.
type ResultRepo interface {
	// Append records a completed quiz.
	Append(ctx context.Context, res QuizResult) error

	// Recent returns the most recent results, newest first.
	Recent(ctx context.Context, limit int) ([]QuizResult, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, res QuizResult) error {
	ts := res.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (timestamp, category, difficulty, score, total, xp_earned, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts, res.Category, res.Difficulty, res.Score, res.Total, res.XPEarned, boolToInt(res.Passed),
	)
	if err != nil {
		return fmt.Errorf("append quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]QuizResult, error) {
	query := `SELECT id, timestamp, category, difficulty, score, total, xp_earned, passed
		FROM quiz_results ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var res QuizResult
		var passed int
		if err := rows.Scan(&res.ID, &res.Timestamp, &res.Category, &res.Difficulty,
			&res.Score, &res.Total, &res.XPEarned, &passed); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		res.Passed = passed != 0
		results = append(results, res)
	}
	return results, rows.Err()
}

package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/qaboard-dev/qaboard/internal/domain"
	internal_errors "github.com/qaboard-dev/qaboard/internal/errors"
)

const pgUniqueViolation = "23505"

func (s *Storage) CreateQuestion(data domain.QuestionCreationData) (domain.QuestionId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Exact-match, case-sensitive uniqueness check. The UNIQUE index
	// still backs this up against concurrent inserts.
	var exists bool
	err = tx.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM questions WHERE title = $1)",
		data.Title,
	).Scan(&exists)
	if err != nil {
		return -1, fmt.Errorf("failed to check title uniqueness: %w", err)
	}
	if exists {
		return -1, internal_errors.Validation("The title has already been taken")
	}

	now := time.Now().UTC().Round(time.Microsecond) // database anyway rounds to microsecond
	var id domain.QuestionId
	err = tx.QueryRow(`
        INSERT INTO questions(title, content, nb_replies, labels, user_id, created_at, updated_at)
        VALUES($1, $2, 0, $3, $4, $5, $5)
        RETURNING id
    `, data.Title, data.Content, data.Labels, data.Author.Id, now).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return -1, internal_errors.Validation("The title has already been taken")
		}
		return -1, fmt.Errorf("failed to insert question: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *Storage) GetQuestion(id domain.QuestionId) (domain.Question, error) {
	var q domain.Question
	err := s.db.QueryRow(`
        SELECT id, title, content, nb_replies, labels, user_id, created_at, updated_at
        FROM questions
        WHERE id = $1
    `, id).Scan(&q.Id, &q.Title, &q.Content, &q.NumReplies, &q.Labels, &q.AuthorId, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Question{}, internal_errors.NotFound("Question not found")
		}
		return domain.Question{}, fmt.Errorf("failed to fetch question: %w", err)
	}
	return q, nil
}

// LabelFields returns the raw labels field of every question. The
// sidebar label set is derived from this, never from a filtered feed.
func (s *Storage) LabelFields() ([]domain.Labels, error) {
	rows, err := s.db.Query("SELECT labels FROM questions")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch label fields: %w", err)
	}
	defer rows.Close()

	var fields []domain.Labels
	for rows.Next() {
		var f domain.Labels
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("failed to scan labels: %w", err)
		}
		fields = append(fields, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return fields, nil
}

package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/qaboard-dev/qaboard/internal/domain"
	internal_errors "github.com/qaboard-dev/qaboard/internal/errors"
)

// CreateReply inserts the reply row and bumps the question's owned
// nb_replies counter in the same transaction, so the denormalized
// count cannot drift from the reply table.
func (s *Storage) CreateReply(data domain.ReplyCreationData) (domain.ReplyId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // ignored once the tx is committed

	createdTs := time.Now().UTC().Round(time.Microsecond)
	var n int
	err = tx.QueryRow(`
        UPDATE questions
        SET nb_replies = nb_replies + 1, updated_at = $1
        WHERE id = $2
        RETURNING nb_replies
    `, createdTs, data.QuestionId).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, internal_errors.NotFound("Question not found")
		}
		return -1, fmt.Errorf("failed to bump reply count: %w", err)
	}

	var id domain.ReplyId
	err = tx.QueryRow(`
        INSERT INTO replies(question_id, user_id, content, created_at)
        VALUES($1, $2, $3, $4)
        RETURNING id
    `, data.QuestionId, data.Author.Id, data.Content, createdTs).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert reply: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// ListReplies returns all replies for a question in insertion order
// (the table is append-only, so id order is insertion order).
func (s *Storage) ListReplies(questionId domain.QuestionId) ([]domain.Reply, error) {
	rows, err := s.db.Query(`
        SELECT id, question_id, user_id, content, created_at
        FROM replies
        WHERE question_id = $1
        ORDER BY id
    `, questionId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.QuestionId, &r.AuthorId, &r.Content, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

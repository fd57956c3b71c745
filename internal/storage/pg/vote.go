package pg

import (
	"fmt"

	"github.com/qaboard-dev/qaboard/internal/domain"
	internal_errors "github.com/qaboard-dev/qaboard/internal/errors"
)

// likes and dislikes live in separate tables (see migrations). The
// kind never reaches SQL as user input, only via this table.
func voteTable(kind domain.VoteKind) string {
	if kind == domain.VoteDislike {
		return "dislikes"
	}
	return "likes"
}

func (s *Storage) CreateVote(kind domain.VoteKind, questionId domain.QuestionId, userId domain.UserId) (domain.VoteId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow("SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)", questionId).Scan(&exists)
	if err != nil {
		return -1, fmt.Errorf("failed to validate question: %w", err)
	}
	if !exists {
		return -1, internal_errors.NotFound("Question not found")
	}

	var id domain.VoteId
	err = tx.QueryRow(fmt.Sprintf(`
        INSERT INTO %s(question_id, user_id)
        VALUES($1, $2)
        RETURNING id
    `, voteTable(kind)), questionId, userId).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// ListVotes returns the full vote rows for a question, not just a
// total. Callers count them.
func (s *Storage) ListVotes(kind domain.VoteKind, questionId domain.QuestionId) ([]domain.Vote, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
        SELECT id, question_id, user_id
        FROM %s
        WHERE question_id = $1
        ORDER BY id
    `, voteTable(kind)), questionId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.Id, &v.QuestionId, &v.UserId); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return votes, nil
}

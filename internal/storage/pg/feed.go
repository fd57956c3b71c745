package pg

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/qaboard-dev/qaboard/internal/domain"
)

const feedSelect = `
    SELECT q.id, q.title, q.content, q.nb_replies, q.labels, q.user_id,
           q.created_at, q.updated_at, u.name
    FROM questions q
    JOIN users u ON u.id = q.user_id
`

// feedColumns maps the closed order enum onto sortable columns.
// OrderNone is deliberately absent: an unrecognized key means no ORDER
// BY clause at all.
var feedColumns = map[domain.FeedOrder]string{
	domain.OrderCreated: "q.created_at",
	domain.OrderReplies: "q.nb_replies",
	domain.OrderTitle:   "q.title",
	domain.OrderUpdated: "q.updated_at",
}

// ListQuestions returns the question/author join, optionally sorted on
// a single key. Ties on the sort key break on id ascending so listings
// are deterministic.
func (s *Storage) ListQuestions(order domain.FeedOrder, dir domain.SortDirection) ([]domain.QuestionSummary, error) {
	query := feedSelect
	if column, ok := feedColumns[order]; ok {
		direction := "ASC"
		if dir == domain.Desc {
			direction = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s, q.id ASC", column, direction)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question feed: %w", err)
	}
	return scanFeed(rows)
}

// likeEscaper makes the filter token a literal substring inside the
// LIKE pattern ("math" must not behave as a wildcard expression).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FilterQuestionsByLabel narrows the join to questions whose labels
// field contains token as a raw case-sensitive substring. No
// tokenization: filter "s" matches "css,ui".
func (s *Storage) FilterQuestionsByLabel(token string) ([]domain.QuestionSummary, error) {
	rows, err := s.db.Query(
		feedSelect+` WHERE q.labels LIKE '%' || $1 || '%'`,
		likeEscaper.Replace(token),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to filter question feed: %w", err)
	}
	return scanFeed(rows)
}

func scanFeed(rows *sql.Rows) ([]domain.QuestionSummary, error) {
	defer rows.Close()

	var feed []domain.QuestionSummary
	for rows.Next() {
		var q domain.QuestionSummary
		if err := rows.Scan(
			&q.Id, &q.Title, &q.Content, &q.NumReplies, &q.Labels,
			&q.AuthorId, &q.CreatedAt, &q.UpdatedAt, &q.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question summary: %w", err)
		}
		feed = append(feed, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return feed, nil
}

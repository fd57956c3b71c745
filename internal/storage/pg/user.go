package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/qaboard-dev/qaboard/internal/domain"
	internal_errors "github.com/qaboard-dev/qaboard/internal/errors"
)

func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRow(`
        INSERT INTO users(name, pass_hash)
        VALUES($1, $2)
        RETURNING id
    `, user.Name, user.PassHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return -1, internal_errors.Validation("The name has already been taken")
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) GetUser(id domain.UserId) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(
		"SELECT id, name, pass_hash FROM users WHERE id = $1", id,
	).Scan(&u.Id, &u.Name, &u.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

func (s *Storage) UserByName(name string) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(
		"SELECT id, name, pass_hash FROM users WHERE name = $1", name,
	).Scan(&u.Id, &u.Name, &u.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// UserNames returns the id -> name lookup table the question page uses
// to render reply authorship without a per-reply join.
func (s *Storage) UserNames() (map[domain.UserId]string, error) {
	rows, err := s.db.Query("SELECT id, name FROM users")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user names: %w", err)
	}
	defer rows.Close()

	names := make(map[domain.UserId]string)
	for rows.Next() {
		var id domain.UserId
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan user name: %w", err)
		}
		names[id] = name
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return names, nil
}

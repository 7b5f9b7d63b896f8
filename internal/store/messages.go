package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"messagely/internal/apperr"
	"messagely/internal/models"
)

// MessageStore persists directed messages between two users and resolves
// participant profiles for history queries.
type MessageStore struct {
	DB *sql.DB
}

// Send inserts a message from one user to another with sent_at set to now
// and read_at null. Unknown usernames surface as apperr.ErrValidation via
// the foreign keys on the messages table.
func (s *MessageStore) Send(ctx context.Context, from, to, body string) (*models.Message, error) {
	sentAt := time.Now().UTC()
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO messages (from_username, to_username, body, sent_at)
		 VALUES (?, ?, ?, ?)`,
		from, to, body, sentAt)
	if err != nil {
		if isFKViolation(err) {
			return nil, fmt.Errorf("unknown sender or recipient: %w", apperr.ErrValidation)
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Message{
		ID:           id,
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       sentAt,
	}, nil
}

// MarkRead sets read_at for a message, once. Only the recipient may do so;
// anyone else gets apperr.ErrForbidden and the row is left untouched.
func (s *MessageStore) MarkRead(ctx context.Context, id int64, reader string) (*models.Message, error) {
	var m models.Message
	var readAt sql.NullTime
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, from_username, to_username, body, sent_at, read_at
		 FROM messages WHERE id = ?`, id).
		Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt, &readAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("message %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if m.ToUsername != reader {
		return nil, fmt.Errorf("only the recipient can mark a message read: %w", apperr.ErrForbidden)
	}
	if readAt.Valid {
		// read_at is set once; marking again is a no-op
		m.ReadAt = &readAt.Time
		return &m, nil
	}

	now := time.Now().UTC()
	if _, err := s.DB.ExecContext(ctx,
		`UPDATE messages SET read_at = ? WHERE id = ? AND read_at IS NULL`,
		now, id); err != nil {
		return nil, err
	}
	m.ReadAt = &now
	return &m, nil
}

// Get returns a message with sender and recipient profiles resolved.
func (s *MessageStore) Get(ctx context.Context, id int64) (*models.MessageDetail, error) {
	var d models.MessageDetail
	var readAt sql.NullTime
	err := s.DB.QueryRowContext(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        f.username, f.first_name, f.last_name, f.phone,
		        t.username, t.first_name, t.last_name, t.phone
		 FROM messages m
		 JOIN users f ON m.from_username = f.username
		 JOIN users t ON m.to_username = t.username
		 WHERE m.id = ?`, id).
		Scan(&d.ID, &d.Body, &d.SentAt, &readAt,
			&d.FromUser.Username, &d.FromUser.FirstName, &d.FromUser.LastName, &d.FromUser.Phone,
			&d.ToUser.Username, &d.ToUser.FirstName, &d.ToUser.LastName, &d.ToUser.Phone)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("message %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if readAt.Valid {
		d.ReadAt = &readAt.Time
	}
	return &d, nil
}

// From returns every message sent by username with the recipient profile
// nested under to_user.
func (s *MessageStore) From(ctx context.Context, username string) ([]models.SentMessage, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages m
		 JOIN users u ON m.to_username = u.username
		 WHERE m.from_username = ?
		 ORDER BY m.id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []models.SentMessage{}
	for rows.Next() {
		var m models.SentMessage
		var readAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &readAt,
			&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone); err != nil {
			return nil, err
		}
		if readAt.Valid {
			m.ReadAt = &readAt.Time
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// To returns every message received by username with the sender profile
// nested under from_user.
func (s *MessageStore) To(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages m
		 JOIN users u ON m.from_username = u.username
		 WHERE m.to_username = ?
		 ORDER BY m.id`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []models.ReceivedMessage{}
	for rows.Next() {
		var m models.ReceivedMessage
		var readAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &readAt,
			&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone); err != nil {
			return nil, err
		}
		if readAt.Valid {
			m.ReadAt = &readAt.Time
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

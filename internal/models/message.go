package models

import "time"

// Message is a directed message row. ReadAt stays nil until the recipient
// marks it read.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

// MessageDetail is a message with both participant profiles resolved.
type MessageDetail struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	ToUser   UserSummary `json:"to_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

// SentMessage is a history entry for messages a user sent, with the
// recipient profile resolved.
type SentMessage struct {
	ID     int64       `json:"id"`
	ToUser UserSummary `json:"to_user"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
}

// ReceivedMessage is a history entry for messages a user received, with
// the sender profile resolved.
type ReceivedMessage struct {
	ID       int64       `json:"id"`
	FromUser UserSummary `json:"from_user"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
}

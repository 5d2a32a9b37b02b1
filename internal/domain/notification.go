package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationAlert    = "alert"
	NotificationIncident = "incident"
	NotificationWelcome  = "welcome"
)

type NotificationRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Type        string    `json:"type"`
	ReferenceID string    `json:"reference_id"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// PushMessage is one topic-addressed send.
type PushMessage struct {
	Topic    string            `json:"topic"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data"`
	Android  AndroidHints      `json:"android"`
	APNS     APNSHints         `json:"apns"`
	Critical bool              `json:"-"`
}

type AndroidHints struct {
	Priority  string `json:"priority"`
	ChannelID string `json:"channel_id"`
	Sound     string `json:"sound"`
}

type APNSHints struct {
	Sound string `json:"sound"`
	Badge int    `json:"badge"`
}

// TopicResult captures the outcome of a single topic send.
type TopicResult struct {
	Topic string `json:"topic"`
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

type BroadcastReport struct {
	Results []TopicResult `json:"results"`
	Sent    int           `json:"sent"`
	Failed  int           `json:"failed"`
}

// Package line implements the LINE Messaging API surface the bot uses:
// webhook signature verification, event parsing and dispatch, and the
// reply client.
package line

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// EventType identifies a webhook event kind. The set is closed; new
// kinds are added here and in EventHandler, not registered at runtime.
type EventType string

const (
	EventTypeMessage EventType = "message"
	EventTypeJoin    EventType = "join"
	EventTypeLeave   EventType = "leave"
)

// SourceType identifies where an event originated.
type SourceType string

const (
	SourceTypeUser  SourceType = "user"
	SourceTypeGroup SourceType = "group"
	SourceTypeRoom  SourceType = "room"
)

// Source identifies the sender of an event: a direct user, a group chat
// or a multi-person room.
type Source struct {
	Type    SourceType `json:"type"`
	UserID  string     `json:"userId,omitempty"`
	GroupID string     `json:"groupId,omitempty"`
	RoomID  string     `json:"roomId,omitempty"`
}

// ID returns the most specific identifier for the source.
func (s Source) ID() string {
	switch {
	case s.GroupID != "":
		return s.GroupID
	case s.RoomID != "":
		return s.RoomID
	default:
		return s.UserID
	}
}

// Message is the message content of a message event.
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Event is a single webhook event. Message is nil for non-message events.
type Event struct {
	Type           EventType `json:"type"`
	WebhookEventID string    `json:"webhookEventId"`
	ReplyToken     string    `json:"replyToken"`
	Source         Source    `json:"source"`
	Timestamp      int64     `json:"timestamp"` // milliseconds since epoch
	Message        *Message  `json:"message,omitempty"`
}

// Time returns the event's send time.
func (e Event) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// ErrMalformedPayload is returned when the webhook body is not a valid
// event envelope.
var ErrMalformedPayload = errors.New("malformed webhook payload")

type webhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// ParseRequest decodes a webhook body into its events.
func ParseRequest(body []byte) ([]Event, error) {
	var req webhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return req.Events, nil
}

package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered      EventType = "user_registered"
	EventUserProfileUpdated  EventType = "user_profile_updated"
	EventUserPasswordChanged EventType = "user_password_changed"
	EventUserDeleted         EventType = "user_deleted"
)

// Event represents a domain event emitted by services. Payloads never
// carry password material.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserProfileUpdatedPayload payload.
type UserProfileUpdatedPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	EmailChanged bool   `json:"email_changed"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	Email string `json:"email"`
}

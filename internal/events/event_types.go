package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventLockerCreated   EventType = "locker_created"
	EventLockerDeleted   EventType = "locker_deleted"
	EventLockerBooked    EventType = "locker_booked"
	EventLockerCancelled EventType = "locker_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// LockerCreatedPayload payload.
type LockerCreatedPayload struct {
	LockerID string `json:"locker_id"`
	Name     string `json:"name"`
}

// LockerDeletedPayload payload.
type LockerDeletedPayload struct {
	LockerID string `json:"locker_id"`
}

// LockerBookedPayload payload.
type LockerBookedPayload struct {
	LockerID string    `json:"locker_id"`
	OwnerID  string    `json:"owner_id"`
	BookedAt time.Time `json:"booked_at"`
}

// LockerCancelledPayload payload.
type LockerCancelledPayload struct {
	LockerID string `json:"locker_id"`
	OwnerID  string `json:"owner_id"`
}

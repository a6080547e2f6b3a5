package domain

import "time"

// Locker is the aggregate for a physical storage unit. OwnerID and
// BookedAt are set together or both absent; an absent OwnerID means the
// locker is available.
type Locker struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	Width     float64
	Height    float64
	Depth     float64
	OwnerID   *string
	BookedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Booked reports whether the locker currently has an owner.
func (l *Locker) Booked() bool {
	return l.OwnerID != nil
}

// BookedBy reports whether userID holds the current booking.
func (l *Locker) BookedBy(userID string) bool {
	return l.OwnerID != nil && *l.OwnerID == userID
}

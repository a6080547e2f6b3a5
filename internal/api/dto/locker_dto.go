package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/locker-service/internal/domain"
	apperrors "github.com/spec-kit/locker-service/pkg/util"
)

// bookedAtLayout renders booking timestamps as a human-readable local
// date-time string.
const bookedAtLayout = "2006-01-02 15:04:05"

// LockerRequest payload for locker creation and replacement. All
// fields are required; the zero value counts as absent.
type LockerRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Depth     float64 `json:"depth"`
}

// Validate checks presence of every locker field, reporting the first
// absent one in field order.
func (r LockerRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Latitude, validation.Required),
		validation.Field(&r.Longitude, validation.Required),
		validation.Field(&r.Width, validation.Required),
		validation.Field(&r.Height, validation.Required),
		validation.Field(&r.Depth, validation.Required),
	)
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return apperrors.NewInternalError(err)
	}
	for _, field := range []string{"name", "latitude", "longitude", "width", "height", "depth"} {
		if _, found := errs[field]; found {
			return apperrors.NewMissingField(field)
		}
	}
	return apperrors.NewInternalError(err)
}

// BookingRequest identifies the locker for book/cancel operations.
type BookingRequest struct {
	ID string `json:"id"`
}

// Validate checks the locker id is present.
func (r BookingRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
	); err != nil {
		return apperrors.NewMissingField("id")
	}
	return nil
}

// LockerResponse is the serialized locker record. NotAvailable is only
// present on availability listings, computed relative to the caller.
type LockerResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Depth        float64 `json:"depth"`
	OwnerID      *string `json:"ownerId,omitempty"`
	BookedAt     string  `json:"bookedAt,omitempty"`
	NotAvailable *bool   `json:"notAvailable,omitempty"`
}

// NewLockerResponse serializes a locker.
func NewLockerResponse(locker *domain.Locker) LockerResponse {
	return LockerResponse{
		ID:        locker.ID,
		Name:      locker.Name,
		Latitude:  locker.Latitude,
		Longitude: locker.Longitude,
		Width:     locker.Width,
		Height:    locker.Height,
		Depth:     locker.Depth,
		OwnerID:   locker.OwnerID,
		BookedAt:  formatBookedAt(locker.BookedAt),
	}
}

// NewAvailableLockerResponse serializes a locker with its availability
// flag.
func NewAvailableLockerResponse(locker *domain.Locker, notAvailable bool) LockerResponse {
	resp := NewLockerResponse(locker)
	resp.NotAvailable = &notAvailable
	return resp
}

func formatBookedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(bookedAtLayout)
}

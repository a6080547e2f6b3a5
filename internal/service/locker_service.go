package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/locker-service/internal/domain"
	"github.com/spec-kit/locker-service/internal/events"
	"github.com/spec-kit/locker-service/internal/repository"
	apperrors "github.com/spec-kit/locker-service/pkg/util"
)

// LockerService coordinates inventory management and the booking
// lifecycle: Available (no owner) <-> Booked (owner set).
type LockerService struct {
	lockers    repository.LockerRepository
	dispatcher events.Dispatcher
}

// LockerDependencies bundles requirements for the locker service.
type LockerDependencies struct {
	LockerRepo repository.LockerRepository
	Dispatcher events.Dispatcher
}

// LockerInput is the validated create/update payload.
type LockerInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	Width     float64
	Height    float64
	Depth     float64
}

// LockerAvailability pairs a locker with its availability relative to
// the caller: a locker booked by someone else is not available.
type LockerAvailability struct {
	Locker       domain.Locker
	NotAvailable bool
}

// NewLockerService constructs the service.
func NewLockerService(deps LockerDependencies) *LockerService {
	return &LockerService{
		lockers:    deps.LockerRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create persists a new locker with no owner.
func (s *LockerService) Create(ctx context.Context, input LockerInput) (*domain.Locker, error) {
	locker := &domain.Locker{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Width:     input.Width,
		Height:    input.Height,
		Depth:     input.Depth,
	}
	if err := s.lockers.Create(ctx, locker); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventLockerCreated,
		Payload: events.LockerCreatedPayload{LockerID: locker.ID, Name: locker.Name},
	})
	return locker, nil
}

// Update replaces the name and geometry of the locker matching id.
func (s *LockerService) Update(ctx context.Context, id string, input LockerInput) (*domain.Locker, error) {
	locker := &domain.Locker{
		ID:        id,
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Width:     input.Width,
		Height:    input.Height,
		Depth:     input.Depth,
	}
	if err := s.lockers.Replace(ctx, locker); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("locker")
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	updated, err := s.lockers.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return updated, nil
}

// Delete removes the locker matching id.
func (s *LockerService) Delete(ctx context.Context, id string) error {
	if err := s.lockers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("locker")
		}
		return apperrors.NewStoreUnavailable(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventLockerDeleted,
		Payload: events.LockerDeletedPayload{LockerID: id},
	})
	return nil
}

// List returns all lockers whose name contains nameFilter, regardless
// of booking state. An empty filter matches everything.
func (s *LockerService) List(ctx context.Context, nameFilter string) ([]domain.Locker, error) {
	lockers, err := s.lockers.List(ctx, nameFilter)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return lockers, nil
}

// ListAvailable returns lockers that are unbooked or booked by the
// caller, each annotated with availability relative to the caller.
func (s *LockerService) ListAvailable(ctx context.Context, callerID, nameFilter string) ([]LockerAvailability, error) {
	lockers, err := s.lockers.ListAvailableTo(ctx, callerID, nameFilter)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	result := make([]LockerAvailability, 0, len(lockers))
	for _, locker := range lockers {
		result = append(result, LockerAvailability{
			Locker:       locker,
			NotAvailable: locker.Booked() && !locker.BookedBy(callerID),
		})
	}
	return result, nil
}

// ListBookings returns the lockers currently booked by the caller.
func (s *LockerService) ListBookings(ctx context.Context, callerID string) ([]domain.Locker, error) {
	lockers, err := s.lockers.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return lockers, nil
}

// Get returns a slice holding the locker matching id, or an empty
// slice when there is no match.
func (s *LockerService) Get(ctx context.Context, id string) ([]domain.Locker, error) {
	locker, err := s.lockers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Locker{}, nil
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return []domain.Locker{*locker}, nil
}

// Book transitions the locker to Booked for the caller. The repository
// performs a conditional update so a concurrent booking cannot be
// overwritten; a locker held by another user is rejected rather than
// stolen. Re-booking by the current owner succeeds.
func (s *LockerService) Book(ctx context.Context, lockerID, callerID string) (*domain.Locker, error) {
	booked, err := s.lockers.Book(ctx, lockerID, callerID, time.Now())
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if !booked {
		if _, err := s.lockers.GetByID(ctx, lockerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("locker")
			}
			return nil, apperrors.NewStoreUnavailable(err)
		}
		return nil, apperrors.NewAlreadyBooked()
	}

	locker, err := s.lockers.GetByID(ctx, lockerID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventLockerBooked,
		ActorID: callerID,
		Payload: events.LockerBookedPayload{
			LockerID: locker.ID,
			OwnerID:  callerID,
			BookedAt: valueOrZero(locker.BookedAt),
		},
	})
	return locker, nil
}

// Cancel transitions the locker back to Available. Only the current
// owner may cancel; anything else reports NotFound so the endpoint does
// not reveal who holds the booking.
func (s *LockerService) Cancel(ctx context.Context, lockerID, callerID string) error {
	released, err := s.lockers.Release(ctx, lockerID, callerID)
	if err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	if !released {
		return apperrors.NewNotFound("locker")
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventLockerCancelled,
		ActorID: callerID,
		Payload: events.LockerCancelledPayload{LockerID: lockerID, OwnerID: callerID},
	})
	return nil
}

func (s *LockerService) publishEvent(ctx context.Context, event events.Event) {
	publish(ctx, s.dispatcher, event)
}

func publish(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

func valueOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

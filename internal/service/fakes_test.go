package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/locker-service/internal/domain"
)

// memUserRepo is an in-memory repository.UserRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	err   error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// memLockerRepo is an in-memory repository.LockerRepository mirroring
// the conditional-update semantics of the SQL implementation.
type memLockerRepo struct {
	mu      sync.Mutex
	lockers map[string]*domain.Locker
	err     error
}

func newMemLockerRepo() *memLockerRepo {
	return &memLockerRepo{lockers: make(map[string]*domain.Locker)}
}

func (r *memLockerRepo) Create(_ context.Context, locker *domain.Locker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	locker.ID = uuid.NewString()
	now := time.Now()
	locker.CreatedAt = now
	locker.UpdatedAt = now
	clone := *locker
	r.lockers[locker.ID] = &clone
	return nil
}

func (r *memLockerRepo) Replace(_ context.Context, locker *domain.Locker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	existing, ok := r.lockers[locker.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Name = locker.Name
	existing.Latitude = locker.Latitude
	existing.Longitude = locker.Longitude
	existing.Width = locker.Width
	existing.Height = locker.Height
	existing.Depth = locker.Depth
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *memLockerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.lockers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.lockers, id)
	return nil
}

func (r *memLockerRepo) GetByID(_ context.Context, id string) (*domain.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	locker, ok := r.lockers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *locker
	return &clone, nil
}

func (r *memLockerRepo) List(_ context.Context, nameFilter string) ([]domain.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	result := []domain.Locker{}
	for _, locker := range r.lockers {
		if matchesName(locker.Name, nameFilter) {
			result = append(result, *locker)
		}
	}
	return result, nil
}

func (r *memLockerRepo) ListAvailableTo(_ context.Context, userID, nameFilter string) ([]domain.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	result := []domain.Locker{}
	for _, locker := range r.lockers {
		if !matchesName(locker.Name, nameFilter) {
			continue
		}
		if locker.OwnerID != nil && *locker.OwnerID != userID {
			continue
		}
		result = append(result, *locker)
	}
	return result, nil
}

func (r *memLockerRepo) ListByOwner(_ context.Context, userID string) ([]domain.Locker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	result := []domain.Locker{}
	for _, locker := range r.lockers {
		if locker.OwnerID != nil && *locker.OwnerID == userID {
			result = append(result, *locker)
		}
	}
	return result, nil
}

func (r *memLockerRepo) Book(_ context.Context, id, userID string, bookedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	locker, ok := r.lockers[id]
	if !ok {
		return false, nil
	}
	if locker.OwnerID != nil && *locker.OwnerID != userID {
		return false, nil
	}
	owner := userID
	at := bookedAt
	locker.OwnerID = &owner
	locker.BookedAt = &at
	locker.UpdatedAt = time.Now()
	return true, nil
}

func (r *memLockerRepo) Release(_ context.Context, id, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	locker, ok := r.lockers[id]
	if !ok {
		return false, nil
	}
	if locker.OwnerID == nil || *locker.OwnerID != userID {
		return false, nil
	}
	locker.OwnerID = nil
	locker.BookedAt = nil
	locker.UpdatedAt = time.Now()
	return true, nil
}

func matchesName(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

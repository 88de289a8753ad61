package users

import (
	"context"
	"sync"
	"time"

	"github.com/avolkovs/todolist/internal/common"
)

// InMemoryRepository is a mutex-guarded map implementation of Repository.
// It mirrors the store's contract (assigned ids, timestamps, account
// uniqueness) and is used by tests and local experiments.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byID: make(map[int64]*User)}
}

func (r *InMemoryRepository) Save(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.byID {
		if u.Account == user.Account && id != user.ID {
			return nil, common.ErrorAccountExists
		}
	}

	now := time.Now().UTC()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := *user
	r.byID[user.ID] = &stored

	return user, nil
}

func (r *InMemoryRepository) FindByAccount(ctx context.Context, account string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Account == account {
			found := *u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	found := *u
	return &found, nil
}

// Count reports the number of stored users. Test helper.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

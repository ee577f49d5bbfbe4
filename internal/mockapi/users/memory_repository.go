package users

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryRepository keeps users in process memory. Emails are unique
// case-insensitively.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]*User
	byEmail map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:  1,
		byID:    make(map[int64]*User),
		byEmail: make(map[string]int64),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, ErrEmailTaken
	}

	u := *user
	u.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now

	r.byID[u.ID] = &u
	r.byEmail[key] = u.ID

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

// Update replaces name, mobile, email and profile. Changing the email to
// one held by another user fails with ErrEmailTaken.
func (r *MemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[user.ID]
	if !ok {
		return nil, ErrNotFound
	}

	newKey := emailKey(user.Email)
	oldKey := emailKey(cur.Email)
	if newKey != oldKey {
		if _, taken := r.byEmail[newKey]; taken {
			return nil, ErrEmailTaken
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = cur.ID
	}

	cur.Name = user.Name
	cur.Email = user.Email
	cur.Mobile = user.Mobile
	if user.Profile != "" {
		cur.Profile = user.Profile
	}
	cur.UpdatedAt = time.Now().UTC()

	out := *cur
	return &out, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

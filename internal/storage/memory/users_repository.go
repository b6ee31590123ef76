package memory

import (
	"context"
	"strings"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) All(ctx context.Context) ([]users.User, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]users.User, len(r.store.users))
	copy(out, r.store.users)
	return out, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (users.User, error) {
	if err := r.store.pause(ctx); err != nil {
		return users.User{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return users.User{}, users.ErrUserNotFound
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (users.User, error) {
	if err := r.store.pause(ctx); err != nil {
		return users.User{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.ID == id {
			return u, nil
		}
	}
	return users.User{}, users.ErrUserNotFound
}

func (r *UserRepository) Insert(ctx context.Context, user users.User) error {
	if err := r.store.pause(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return users.ErrEmailTaken
		}
	}
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user users.User) error {
	if err := r.store.pause(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.users {
		if existing.ID == user.ID {
			r.store.users[i] = user
			return nil
		}
	}
	return users.ErrUserNotFound
}

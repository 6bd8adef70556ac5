package memory

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type userRepo struct {
	st *state
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, user := range r.st.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *userRepo) Create(_ context.Context, user domain.User) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, existing := range r.st.users {
		if existing.Email == user.Email {
			return 0, domain.ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	user.ID = r.st.id("users")
	user.CreatedAt = now
	user.UpdatedAt = now
	user.LastLogin = now
	r.st.users[user.ID] = user
	return user.ID, nil
}

func (r *userRepo) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	user, ok := r.st.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.LastLogin = at
	user.UpdatedAt = at
	r.st.users[id] = user
	return nil
}

var _ domain.UserRepository = (*userRepo)(nil)

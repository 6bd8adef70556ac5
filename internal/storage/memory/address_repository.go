package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type addressRepo struct {
	st *state
}

func (r *addressRepo) Find(_ context.Context, id, userID int64) (domain.Address, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	address, ok := r.st.addresses[id]
	if !ok || address.Deleted || address.UserID != userID {
		return domain.Address{}, domain.ErrAddressNotFound
	}
	return address, nil
}

func (r *addressRepo) List(_ context.Context, userID int64) ([]domain.Address, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	addresses := make([]domain.Address, 0)
	for _, address := range r.st.addresses {
		if address.UserID == userID && !address.Deleted {
			addresses = append(addresses, address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })
	return addresses, nil
}

func (r *addressRepo) Create(_ context.Context, address domain.Address) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	now := time.Now().UTC()
	address.ID = r.st.id("user_addresses")
	address.CreatedAt = now
	address.UpdatedAt = now
	r.st.addresses[address.ID] = address
	return address.ID, nil
}

func (r *addressRepo) Update(_ context.Context, address domain.Address) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	existing, ok := r.st.addresses[address.ID]
	if !ok || existing.Deleted || existing.UserID != address.UserID {
		return domain.ErrAddressNotFound
	}

	address.CreatedAt = existing.CreatedAt
	address.UpdatedAt = time.Now().UTC()
	r.st.addresses[address.ID] = address
	return nil
}

func (r *addressRepo) Delete(_ context.Context, id, userID int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	address, ok := r.st.addresses[id]
	if !ok || address.Deleted || address.UserID != userID {
		return domain.ErrAddressNotFound
	}
	address.Deleted = true
	address.UpdatedAt = time.Now().UTC()
	r.st.addresses[id] = address
	return nil
}

var _ domain.AddressRepository = (*addressRepo)(nil)

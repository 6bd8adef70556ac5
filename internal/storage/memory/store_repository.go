package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type storeRepo struct {
	st *state
}

func (r *storeRepo) Create(_ context.Context, store domain.Store) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	now := time.Now().UTC()
	store.ID = r.st.id("stores")
	store.CreatedAt = now
	store.UpdatedAt = now
	r.st.stores[store.ID] = store
	return store.ID, nil
}

func (r *storeRepo) AdminIDs(_ context.Context, storeID int64) ([]int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	ids := make([]int64, 0)
	for _, user := range r.st.users {
		if user.ManagedStoreID != nil && *user.ManagedStoreID == storeID {
			ids = append(ids, user.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *storeRepo) CreateInvite(_ context.Context, invite domain.StoreInvite) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	invite.CreatedAt = time.Now().UTC()
	r.st.invites[invite.ID] = invite
	return nil
}

func (r *storeRepo) RedeemInvite(_ context.Context, code string) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	invite, ok := r.st.invites[code]
	if !ok || !invite.Valid {
		return 0, domain.ErrInviteInvalid
	}
	invite.Valid = false
	r.st.invites[code] = invite
	return invite.StoreID, nil
}

func (r *storeRepo) CreatePaymentMethods(_ context.Context, storeID int64, names []string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	now := time.Now().UTC()
	for _, name := range names {
		r.st.paymentMethods = append(r.st.paymentMethods, domain.PaymentMethod{
			ID:        r.st.id("payment_methods"),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
			StoreID:   storeID,
		})
	}
	return nil
}

func (r *storeRepo) CreateShippingMethods(_ context.Context, storeID int64, names []string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	now := time.Now().UTC()
	for _, name := range names {
		r.st.shippingMethods = append(r.st.shippingMethods, domain.ShippingMethod{
			ID:        r.st.id("shipping_methods"),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
			StoreID:   storeID,
		})
	}
	return nil
}

var _ domain.StoreRepository = (*storeRepo)(nil)

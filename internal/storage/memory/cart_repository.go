package memory

import (
	"context"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type cartRepo struct {
	st *state
}

func (r *cartRepo) FindActive(_ context.Context, customerID, storeID int64) (domain.ShoppingCart, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, cart := range r.st.carts {
		if cart.CustomerID == customerID && cart.StoreID == storeID {
			return cart, nil
		}
	}
	return domain.ShoppingCart{}, domain.ErrCartNotFound
}

func (r *cartRepo) FindByID(_ context.Context, id int64) (domain.ShoppingCart, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	cart, ok := r.st.carts[id]
	if !ok {
		return domain.ShoppingCart{}, domain.ErrCartNotFound
	}
	return cart, nil
}

func (r *cartRepo) Create(_ context.Context, cart domain.ShoppingCart) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	// Тот же инвариант, что и UNIQUE (customer_id, store_id) в postgres.
	for _, existing := range r.st.carts {
		if existing.CustomerID == cart.CustomerID && existing.StoreID == cart.StoreID {
			return 0, domain.ErrCartExists
		}
	}

	cart.ID = r.st.id("shopping_carts")
	cart.CreatedAt = time.Now().UTC()
	r.st.carts[cart.ID] = cart
	return cart.ID, nil
}

func (r *cartRepo) Delete(_ context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.carts[id]; !ok {
		return domain.ErrCartNotFound
	}
	delete(r.st.carts, id)
	return nil
}

var _ domain.CartRepository = (*cartRepo)(nil)

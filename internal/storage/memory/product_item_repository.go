package memory

import (
	"context"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type productItemRepo struct {
	st *state
}

func (r *productItemRepo) Find(_ context.Context, id int64) (domain.ProductItem, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	item, ok := r.st.productItems[id]
	if !ok || item.Deleted {
		return domain.ProductItem{}, domain.ErrProductItemNotFound
	}
	return item, nil
}

// FindForUpdate повторяет фильтры postgres-реализации; блокировка строки
// in-memory хранилищу не нужна.
func (r *productItemRepo) FindForUpdate(_ context.Context, id, storeID int64) (domain.ProductItem, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	item, ok := r.st.productItems[id]
	if !ok || item.Deleted || item.StoreID != storeID {
		return domain.ProductItem{}, domain.ErrProductItemNotFound
	}
	return item, nil
}

var _ domain.ProductItemRepository = (*productItemRepo)(nil)

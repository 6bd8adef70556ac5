package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type orderItemRepo struct {
	st *state
}

func (r *orderItemRepo) FindByShoppingCart(_ context.Context, cartID int64) ([]domain.OrderItem, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	return r.collect(func(item domain.OrderItem) bool {
		return item.ShoppingCartID != nil && *item.ShoppingCartID == cartID
	}), nil
}

func (r *orderItemRepo) FindByCartAndProduct(_ context.Context, cartID, productItemID int64) ([]domain.OrderItem, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	return r.collect(func(item domain.OrderItem) bool {
		return item.ShoppingCartID != nil && *item.ShoppingCartID == cartID &&
			item.ProductItemID == productItemID
	}), nil
}

func (r *orderItemRepo) Create(_ context.Context, item domain.OrderItem) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	// Частичный уникальный индекс (shopping_cart_id, product_item_id).
	if item.ShoppingCartID != nil {
		for _, existing := range r.st.orderItems {
			if existing.ShoppingCartID != nil &&
				*existing.ShoppingCartID == *item.ShoppingCartID &&
				existing.ProductItemID == item.ProductItemID {
				return 0, domain.Conflict("product item is already in the cart")
			}
		}
	}

	item.ID = r.st.id("order_items")
	r.st.orderItems[item.ID] = item
	return item.ID, nil
}

func (r *orderItemRepo) UpdateQuantity(_ context.Context, id int64, quantity int32) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	item, ok := r.st.orderItems[id]
	if !ok {
		return domain.ErrOrderItemNotFound
	}
	item.Quantity = quantity
	r.st.orderItems[id] = item
	return nil
}

func (r *orderItemRepo) Delete(_ context.Context, ids []int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, id := range ids {
		delete(r.st.orderItems, id)
	}
	return nil
}

// collect вызывается под мьютексом.
func (r *orderItemRepo) collect(match func(domain.OrderItem) bool) []domain.OrderItem {
	items := make([]domain.OrderItem, 0)
	for _, item := range r.st.orderItems {
		if match(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

var _ domain.OrderItemRepository = (*orderItemRepo)(nil)

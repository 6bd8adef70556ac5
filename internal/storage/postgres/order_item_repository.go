package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type orderItemRepository struct {
	store *Store
}

// NewOrderItemRepository создаёт PostgreSQL-реализацию OrderItemRepository.
func NewOrderItemRepository(store *Store) domain.OrderItemRepository {
	return &orderItemRepository{store: store}
}

func (r *orderItemRepository) FindByShoppingCart(ctx context.Context, cartID int64) ([]domain.OrderItem, error) {
	return r.query(ctx, `
		SELECT id, unit_price, quantity, product_item_id, shopping_cart_id, order_id
		FROM order_items
		WHERE shopping_cart_id = $1
		ORDER BY id
	`, cartID)
}

func (r *orderItemRepository) FindByCartAndProduct(ctx context.Context, cartID, productItemID int64) ([]domain.OrderItem, error) {
	return r.query(ctx, `
		SELECT id, unit_price, quantity, product_item_id, shopping_cart_id, order_id
		FROM order_items
		WHERE shopping_cart_id = $1 AND product_item_id = $2
		ORDER BY id
	`, cartID, productItemID)
}

func (r *orderItemRepository) Create(ctx context.Context, item domain.OrderItem) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		cartVal  sql.NullInt64
		orderVal sql.NullInt64
	)
	if item.ShoppingCartID != nil {
		cartVal = sql.NullInt64{Int64: *item.ShoppingCartID, Valid: true}
	}
	if item.OrderID != nil {
		orderVal = sql.NullInt64{Int64: *item.OrderID, Valid: true}
	}

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO order_items (
			unit_price, quantity, product_item_id, shopping_cart_id, order_id
		) VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, item.UnitPrice, item.Quantity, item.ProductItemID, cartVal, orderVal).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, constraintCartProductItem) {
			return 0, domain.Conflict("product item is already in the cart")
		}
		return 0, fmt.Errorf("insert order item: %w", err)
	}
	return id, nil
}

func (r *orderItemRepository) UpdateQuantity(ctx context.Context, id int64, quantity int32) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.q(ctx).ExecContext(ctx, `
		UPDATE order_items SET quantity = $1 WHERE id = $2
	`, quantity, id)
	if err != nil {
		return fmt.Errorf("update order item quantity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrOrderItemNotFound
	}
	return nil
}

func (r *orderItemRepository) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.store.q(ctx).ExecContext(ctx, `
		DELETE FROM order_items WHERE id = ANY($1)
	`, ids); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

func (r *orderItemRepository) query(ctx context.Context, query string, args ...any) ([]domain.OrderItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	// Отсутствие строк — пустой результат, а не ошибка.
	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			item     domain.OrderItem
			cartVal  sql.NullInt64
			orderVal sql.NullInt64
		)
		if err := rows.Scan(
			&item.ID, &item.UnitPrice, &item.Quantity,
			&item.ProductItemID, &cartVal, &orderVal,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if cartVal.Valid {
			item.ShoppingCartID = &cartVal.Int64
		}
		if orderVal.Valid {
			item.OrderID = &orderVal.Int64
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

var _ domain.OrderItemRepository = (*orderItemRepository)(nil)

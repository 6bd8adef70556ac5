package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type cartRepository struct {
	store *Store
}

// NewCartRepository создаёт PostgreSQL-реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) FindActive(ctx context.Context, customerID, storeID int64) (domain.ShoppingCart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.store.q(ctx).QueryRowContext(ctx, `
		SELECT id, customer_id, store_id, created_at
		FROM shopping_carts
		WHERE customer_id = $1 AND store_id = $2
	`, customerID, storeID)
	return scanCart(row)
}

func (r *cartRepository) FindByID(ctx context.Context, id int64) (domain.ShoppingCart, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.store.q(ctx).QueryRowContext(ctx, `
		SELECT id, customer_id, store_id, created_at
		FROM shopping_carts
		WHERE id = $1
	`, id)
	return scanCart(row)
}

func (r *cartRepository) Create(ctx context.Context, cart domain.ShoppingCart) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO shopping_carts (customer_id, store_id)
		VALUES ($1, $2)
		RETURNING id
	`, cart.CustomerID, cart.StoreID).Scan(&id)
	if err != nil {
		// Параллельный запрос успел создать корзину между проверкой
		// и вставкой; для клиента это тот же конфликт.
		if isUniqueViolation(err, constraintCartCustomerStore) {
			return 0, domain.ErrCartExists
		}
		return 0, fmt.Errorf("insert shopping cart: %w", err)
	}
	return id, nil
}

func (r *cartRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.q(ctx).ExecContext(ctx, `
		DELETE FROM shopping_carts WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete shopping cart: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCartNotFound
	}
	return nil
}

func scanCart(row *sql.Row) (domain.ShoppingCart, error) {
	var cart domain.ShoppingCart
	err := row.Scan(&cart.ID, &cart.CustomerID, &cart.StoreID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ShoppingCart{}, domain.ErrCartNotFound
		}
		return domain.ShoppingCart{}, fmt.Errorf("select shopping cart: %w", err)
	}
	return cart, nil
}

var _ domain.CartRepository = (*cartRepository)(nil)

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type productItemRepository struct {
	store *Store
}

// NewProductItemRepository создаёт PostgreSQL-реализацию ProductItemRepository.
func NewProductItemRepository(store *Store) domain.ProductItemRepository {
	return &productItemRepository{store: store}
}

const productItemColumns = `
	id, sku, image_url, description, price, stock,
	created_at, updated_at, deleted, variant_id, product_id, store_id`

func (r *productItemRepository) Find(ctx context.Context, id int64) (domain.ProductItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.store.q(ctx).QueryRowContext(ctx, `
		SELECT`+productItemColumns+`
		FROM product_items
		WHERE id = $1 AND deleted = FALSE
	`, id)
	return scanProductItem(row)
}

func (r *productItemRepository) FindForUpdate(ctx context.Context, id, storeID int64) (domain.ProductItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Блокировка строки держит проверку стока и вставку/обновление строки
	// корзины в одной критической секции: параллельные запросы не могут
	// одновременно пройти проверку и совместно превысить остаток.
	row := r.store.q(ctx).QueryRowContext(ctx, `
		SELECT`+productItemColumns+`
		FROM product_items
		WHERE id = $1 AND store_id = $2 AND deleted = FALSE
		FOR UPDATE
	`, id, storeID)
	return scanProductItem(row)
}

func scanProductItem(row *sql.Row) (domain.ProductItem, error) {
	var (
		item    domain.ProductItem
		sku     sql.NullString
		image   sql.NullString
		desc    sql.NullString
		variant sql.NullInt64
	)
	err := row.Scan(
		&item.ID, &sku, &image, &desc, &item.Price, &item.Stock,
		&item.CreatedAt, &item.UpdatedAt, &item.Deleted,
		&variant, &item.ProductID, &item.StoreID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProductItem{}, domain.ErrProductItemNotFound
		}
		return domain.ProductItem{}, fmt.Errorf("select product item: %w", err)
	}

	if sku.Valid {
		item.SKU = &sku.String
	}
	if image.Valid {
		item.ImageURL = &image.String
	}
	if desc.Valid {
		item.Description = &desc.String
	}
	if variant.Valid {
		item.VariantID = &variant.Int64
	}
	return item, nil
}

var _ domain.ProductItemRepository = (*productItemRepository)(nil)

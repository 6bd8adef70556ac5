package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type catalogRepository struct {
	store *Store
}

// NewCatalogRepository создаёт PostgreSQL-реализацию CatalogRepository.
func NewCatalogRepository(store *Store) domain.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category domain.ProductCategory) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO product_categories (name, store_id)
		VALUES ($1, $2)
		RETURNING id
	`, category.Name, category.StoreID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product category: %w", err)
	}
	return id, nil
}

func (r *catalogRepository) CreateVariant(ctx context.Context, variant domain.ProductVariant) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO product_variants (name, value, store_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, variant.Name, variant.Value, variant.StoreID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product variant: %w", err)
	}
	return id, nil
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product domain.Product) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO products (name, store_id, category_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, product.Name, product.StoreID, product.CategoryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (r *catalogRepository) CreateProductItems(ctx context.Context, items []domain.ProductItem) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	for i, item := range items {
		var (
			skuVal     sql.NullString
			imageVal   sql.NullString
			descVal    sql.NullString
			variantVal sql.NullInt64
		)
		if item.SKU != nil {
			skuVal = sql.NullString{String: *item.SKU, Valid: true}
		}
		if item.ImageURL != nil {
			imageVal = sql.NullString{String: *item.ImageURL, Valid: true}
		}
		if item.Description != nil {
			descVal = sql.NullString{String: *item.Description, Valid: true}
		}
		if item.VariantID != nil {
			variantVal = sql.NullInt64{Int64: *item.VariantID, Valid: true}
		}

		if _, err := r.store.q(ctx).ExecContext(ctx, `
			INSERT INTO product_items (
				sku, image_url, description, price, stock, variant_id, product_id, store_id
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`,
			skuVal, imageVal, descVal, item.Price, item.Stock,
			variantVal, item.ProductID, item.StoreID,
		); err != nil {
			return fmt.Errorf("insert product item [%d]: %w", i, err)
		}
	}
	return nil
}

func (r *catalogRepository) ListVariants(ctx context.Context, storeID int64) ([]domain.ProductVariant, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.q(ctx).QueryContext(ctx, `
		SELECT id, name, value, store_id
		FROM product_variants
		WHERE store_id = $1
		ORDER BY id
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list product variants: %w", err)
	}
	defer rows.Close()

	variants := make([]domain.ProductVariant, 0)
	for rows.Next() {
		var v domain.ProductVariant
		if err := rows.Scan(&v.ID, &v.Name, &v.Value, &v.StoreID); err != nil {
			return nil, fmt.Errorf("scan product variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product variants: %w", err)
	}

	return variants, nil
}

var _ domain.CatalogRepository = (*catalogRepository)(nil)

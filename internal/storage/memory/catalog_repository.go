package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type catalogRepo struct {
	st *state
}

func (r *catalogRepo) CreateCategory(_ context.Context, category domain.ProductCategory) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	category.ID = r.st.id("product_categories")
	r.st.categories[category.ID] = category
	return category.ID, nil
}

func (r *catalogRepo) CreateVariant(_ context.Context, variant domain.ProductVariant) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	variant.ID = r.st.id("product_variants")
	r.st.variants[variant.ID] = variant
	return variant.ID, nil
}

func (r *catalogRepo) CreateProduct(_ context.Context, product domain.Product) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	product.ID = r.st.id("products")
	r.st.products[product.ID] = product
	return product.ID, nil
}

func (r *catalogRepo) CreateProductItems(_ context.Context, items []domain.ProductItem) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	now := time.Now().UTC()
	for _, item := range items {
		item.ID = r.st.id("product_items")
		item.CreatedAt = now
		item.UpdatedAt = now
		r.st.productItems[item.ID] = item
	}
	return nil
}

func (r *catalogRepo) ListVariants(_ context.Context, storeID int64) ([]domain.ProductVariant, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	variants := make([]domain.ProductVariant, 0)
	for _, v := range r.st.variants {
		if v.StoreID == storeID {
			variants = append(variants, v)
		}
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i].ID < variants[j].ID })
	return variants, nil
}

var _ domain.CatalogRepository = (*catalogRepo)(nil)

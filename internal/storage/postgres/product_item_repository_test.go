package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func productItemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "sku", "image_url", "description", "price", "stock",
		"created_at", "updated_at", "deleted", "variant_id", "product_id", "store_id",
	})
}

func TestProductItemFind(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewProductItemRepository(store)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND deleted = FALSE")).
		WithArgs(int64(3)).
		WillReturnRows(productItemRows().
			AddRow(int64(3), "SKU-1", nil, nil, "19.99", int32(5), now, now, false, nil, int64(2), int64(1)))

	item, err := repo.Find(context.Background(), 3)
	if err != nil {
		t.Fatalf("find product item: %v", err)
	}
	if item.SKU == nil || *item.SKU != "SKU-1" {
		t.Fatal("sku must be scanned")
	}
	if item.ImageURL != nil || item.Description != nil || item.VariantID != nil {
		t.Fatal("null columns must stay nil")
	}
	if !item.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("expected price 19.99, got %s", item.Price)
	}
}

func TestProductItemFind_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewProductItemRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND deleted = FALSE")).
		WithArgs(int64(3)).
		WillReturnRows(productItemRows())

	_, err := repo.Find(context.Background(), 3)
	if !errors.Is(err, domain.ErrProductItemNotFound) {
		t.Fatalf("expected ErrProductItemNotFound, got %v", err)
	}
}

func TestProductItemFindForUpdate_LocksRow(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewProductItemRepository(store)

	now := time.Now()
	// Запрос обязан брать блокировку строки и ограничивать магазин.
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND store_id = $2 AND deleted = FALSE") + `[\s]+FOR UPDATE`).
		WithArgs(int64(3), int64(1)).
		WillReturnRows(productItemRows().
			AddRow(int64(3), nil, nil, nil, "19.99", int32(5), now, now, false, nil, int64(2), int64(1)))

	item, err := repo.FindForUpdate(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("find for update: %v", err)
	}
	if item.StoreID != 1 {
		t.Fatalf("expected store 1, got %d", item.StoreID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

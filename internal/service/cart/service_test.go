package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(store.Carts(), store.OrderItems(), store.ProductItems(), store, nil)
	return svc, store
}

func seedItem(store *memory.Store, storeID int64, price string, stock int32) int64 {
	return store.SeedProductItem(domain.ProductItem{
		Price:   decimal.RequireFromString(price),
		Stock:   stock,
		StoreID: storeID,
	})
}

func TestCreateCart(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "9.99", 5)

	cartID, err := svc.Create(context.Background(), 10, 1, itemID, 2)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	if cartID == 0 {
		t.Fatal("expected non-zero cart id")
	}

	items, err := svc.Items(context.Background(), cartID)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if !items[0].UnitPrice.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("expected price snapshot 9.99, got %s", items[0].UnitPrice)
	}
	if items[0].ShoppingCartID == nil || *items[0].ShoppingCartID != cartID {
		t.Fatal("order item is not linked to the cart")
	}
}

func TestCreateCart_DuplicateForStore(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 10)

	if _, err := svc.Create(context.Background(), 10, 1, itemID, 1); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if !errors.Is(err, domain.ErrCartExists) {
		t.Fatalf("expected ErrCartExists, got %v", err)
	}
	if domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("expected conflict kind, got %s", domain.KindOf(err))
	}
}

func TestCreateCart_SecondStoreAllowed(t *testing.T) {
	svc, store := newTestService(t)
	first := seedItem(store, 1, "5.00", 10)
	second := seedItem(store, 2, "7.00", 10)

	if _, err := svc.Create(context.Background(), 10, 1, first, 1); err != nil {
		t.Fatalf("create in store 1: %v", err)
	}
	if _, err := svc.Create(context.Background(), 10, 2, second, 1); err != nil {
		t.Fatalf("create in store 2: %v", err)
	}
}

func TestCreateCart_QuantityUnavailable(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 3)

	_, err := svc.Create(context.Background(), 10, 1, itemID, 4)
	if !errors.Is(err, domain.ErrQuantityUnavailable) {
		t.Fatalf("expected ErrQuantityUnavailable, got %v", err)
	}

	// Транзакция откатилась целиком: корзина не создана.
	if _, err := store.Carts().FindActive(context.Background(), 10, 1); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected no cart after rollback, got %v", err)
	}
}

func TestCreateCart_ProductNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), 10, 1, 999, 1)
	if !errors.Is(err, domain.ErrProductItemNotFound) {
		t.Fatalf("expected ErrProductItemNotFound, got %v", err)
	}
}

func TestCreateCart_DeletedProduct(t *testing.T) {
	svc, store := newTestService(t)
	itemID := store.SeedProductItem(domain.ProductItem{
		Price:   decimal.RequireFromString("5.00"),
		Stock:   10,
		StoreID: 1,
		Deleted: true,
	})

	_, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if !errors.Is(err, domain.ErrProductItemNotFound) {
		t.Fatalf("expected ErrProductItemNotFound for deleted item, got %v", err)
	}
}

func TestCreateCart_WrongStore(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 2, "5.00", 10)

	_, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if !errors.Is(err, domain.ErrProductItemNotFound) {
		t.Fatalf("expected ErrProductItemNotFound for foreign store, got %v", err)
	}
}

func TestEditCart_InsertsNewLine(t *testing.T) {
	svc, store := newTestService(t)
	first := seedItem(store, 1, "5.00", 10)
	second := seedItem(store, 1, "8.50", 10)

	cartID, err := svc.Create(context.Background(), 10, 1, first, 1)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	if err := svc.Edit(context.Background(), cartID, 1, second, 3); err != nil {
		t.Fatalf("edit cart: %v", err)
	}

	items, err := svc.Items(context.Background(), cartID)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(items))
	}
}

func TestEditCart_UpdatesQuantityInPlace(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 10)

	cartID, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	if err := svc.Edit(context.Background(), cartID, 1, itemID, 4); err != nil {
		t.Fatalf("edit cart: %v", err)
	}

	items, err := svc.Items(context.Background(), cartID)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single order item, got %d", len(items))
	}
	if items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", items[0].Quantity)
	}
	if !items[0].UnitPrice.Equal(decimal.RequireFromString("5.00")) {
		t.Fatalf("price must not be re-snapshotted, got %s", items[0].UnitPrice)
	}
}

func TestEditCart_Idempotent(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 10)

	cartID, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.Edit(context.Background(), cartID, 1, itemID, 2); err != nil {
			t.Fatalf("edit #%d: %v", i, err)
		}
	}

	items, err := svc.Items(context.Background(), cartID)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected one item with quantity 2, got %+v", items)
	}
}

func TestEditCart_QuantityUnavailable(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 3)

	cartID, err := svc.Create(context.Background(), 10, 1, itemID, 2)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	err = svc.Edit(context.Background(), cartID, 1, itemID, 5)
	if !errors.Is(err, domain.ErrQuantityUnavailable) {
		t.Fatalf("expected ErrQuantityUnavailable, got %v", err)
	}

	items, _ := svc.Items(context.Background(), cartID)
	if items[0].Quantity != 2 {
		t.Fatalf("quantity must stay 2 after failed edit, got %d", items[0].Quantity)
	}
}

func TestEditCart_UnknownCart(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 10)

	err := svc.Edit(context.Background(), 999, 1, itemID, 1)
	if !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestDeleteCart(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 10)

	cartID, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}

	if err := svc.Delete(context.Background(), cartID); err != nil {
		t.Fatalf("delete cart: %v", err)
	}

	if _, err := store.Carts().FindByID(context.Background(), cartID); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected cart to be gone, got %v", err)
	}
	items, err := store.OrderItems().FindByShoppingCart(context.Background(), cartID)
	if err != nil {
		t.Fatalf("load items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no order items left, got %d", len(items))
	}
}

func TestDeleteCart_Unknown(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestDeleteCart_AllowsRecreate(t *testing.T) {
	svc, store := newTestService(t)
	itemID := seedItem(store, 1, "5.00", 10)

	cartID, err := svc.Create(context.Background(), 10, 1, itemID, 1)
	if err != nil {
		t.Fatalf("create cart: %v", err)
	}
	if err := svc.Delete(context.Background(), cartID); err != nil {
		t.Fatalf("delete cart: %v", err)
	}

	if _, err := svc.Create(context.Background(), 10, 1, itemID, 1); err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
}

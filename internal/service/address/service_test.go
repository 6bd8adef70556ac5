package address

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func testAddress(userID int64) domain.Address {
	return domain.Address{
		AddressLine1: "Main street",
		Number:       "12",
		City:         "Berlin",
		Country:      "Germany",
		PostalCode:   "10115",
		UserID:       userID,
	}
}

func TestAddressLifecycle(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Addresses(), nil)

	id, err := svc.Create(context.Background(), testAddress(10))
	if err != nil {
		t.Fatalf("create address: %v", err)
	}

	found, err := svc.Find(context.Background(), id, 10)
	if err != nil {
		t.Fatalf("find address: %v", err)
	}
	if found.City != "Berlin" {
		t.Fatalf("expected Berlin, got %s", found.City)
	}

	updated := found
	updated.City = "Hamburg"
	if err := svc.Update(context.Background(), updated); err != nil {
		t.Fatalf("update address: %v", err)
	}
	found, err = svc.Find(context.Background(), id, 10)
	if err != nil {
		t.Fatalf("find after update: %v", err)
	}
	if found.City != "Hamburg" {
		t.Fatalf("expected Hamburg, got %s", found.City)
	}

	if err := svc.Delete(context.Background(), id, 10); err != nil {
		t.Fatalf("delete address: %v", err)
	}
	if _, err := svc.Find(context.Background(), id, 10); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound after delete, got %v", err)
	}
}

func TestAddress_ScopedToOwner(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Addresses(), nil)

	id, err := svc.Create(context.Background(), testAddress(10))
	if err != nil {
		t.Fatalf("create address: %v", err)
	}

	// Чужой адрес неотличим от несуществующего.
	if _, err := svc.Find(context.Background(), id, 11); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound for foreign user, got %v", err)
	}
	foreign := testAddress(11)
	foreign.ID = id
	if err := svc.Update(context.Background(), foreign); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound on foreign update, got %v", err)
	}
	if err := svc.Delete(context.Background(), id, 11); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound on foreign delete, got %v", err)
	}
}

func TestAddressList(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Addresses(), nil)

	if _, err := svc.Create(context.Background(), testAddress(10)); err != nil {
		t.Fatalf("create address: %v", err)
	}
	second := testAddress(10)
	second.City = "Munich"
	deletedID, err := svc.Create(context.Background(), second)
	if err != nil {
		t.Fatalf("create address: %v", err)
	}
	if _, err := svc.Create(context.Background(), testAddress(11)); err != nil {
		t.Fatalf("create address: %v", err)
	}
	if err := svc.Delete(context.Background(), deletedID, 10); err != nil {
		t.Fatalf("delete address: %v", err)
	}

	list, err := svc.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list addresses: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 visible address, got %d", len(list))
	}
}

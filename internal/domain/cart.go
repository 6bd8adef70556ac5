package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingCart — незавершённый выбор покупателя в одном магазине.
// Инвариант: не более одной корзины на пару (покупатель, магазин).
type ShoppingCart struct {
	ID         int64
	CustomerID int64
	StoreID    int64
	CreatedAt  time.Time
}

// OrderItem — строка корзины или заказа. UnitPrice фиксируется в момент
// создания строки; последующие изменения цены товара её не меняют.
type OrderItem struct {
	ID            int64
	UnitPrice     decimal.Decimal
	Quantity      int32
	ProductItemID int64
	// ShoppingCartID заполнен до оформления заказа, OrderID — после.
	ShoppingCartID *int64
	OrderID        *int64
}

// Validate проверяет базовые инварианты строки заказа.
func (i OrderItem) Validate() error {
	if i.Quantity <= 0 {
		return BadRequest("quantity must be greater than zero")
	}
	if i.UnitPrice.IsNegative() {
		return BadRequest("unit price must be non-negative")
	}
	if i.ProductItemID == 0 {
		return BadRequest("product item id is required")
	}
	return nil
}

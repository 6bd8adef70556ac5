package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory — категория каталога внутри магазина.
type ProductCategory struct {
	ID      int64
	Name    string
	StoreID int64
}

// ProductVariant — вариант товара (например, "Размер" = "XL").
type ProductVariant struct {
	ID      int64
	Name    string
	Value   string
	StoreID int64
}

// Product — товар каталога; конкретные позиции со стоком и ценой — ProductItem.
type Product struct {
	ID         int64
	Name       string
	Deleted    bool
	StoreID    int64
	CategoryID int64
}

// ProductItem — продаваемая позиция: цена, остаток и мягкое удаление.
// Удалённая позиция никогда не участвует в операциях корзины.
type ProductItem struct {
	ID          int64
	SKU         *string
	ImageURL    *string
	Description *string
	Price       decimal.Decimal
	Stock       int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
	VariantID   *int64
	ProductID   int64
	StoreID     int64
}

package domain

import "time"

// Store — магазин-арендатор. Все сущности каталога и корзины привязаны
// к конкретному магазину.
type Store struct {
	ID        int64
	Name      string
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreInvite — одноразовый код, позволяющий новому администратору
// привязаться к магазину при регистрации. После использования Valid
// становится false.
type StoreInvite struct {
	ID        string
	Valid     bool
	CreatedAt time.Time
	StoreID   int64
}

// PaymentMethod — способ оплаты, доступный в магазине.
type PaymentMethod struct {
	ID        int64
	Name      string
	Inactive  bool
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	StoreID   int64
}

// ShippingMethod — способ доставки, доступный в магазине.
type ShippingMethod struct {
	ID        int64
	Name      string
	Inactive  bool
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	StoreID   int64
}

// Наборы по умолчанию, создаваемые вместе с магазином.
var (
	DefaultPaymentMethods  = []string{"Bank transfer", "Credit card", "Debit card", "PayPal", "Cash"}
	DefaultShippingMethods = []string{"Ups", "FedEx"}
)

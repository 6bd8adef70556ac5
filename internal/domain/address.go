package domain

import "time"

// Address — адрес из адресной книги пользователя. Помечается удалённым,
// физически строка остаётся.
type Address struct {
	ID               int64
	AddressLine1     string
	AddressLine2     *string
	Number           string
	City             string
	Country          string
	PostalCode       string
	PhoneCountryCode *string
	PhoneNumber      *string
	Deleted          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           int64
}

package domain

import "time"

// UserType различает покупателей и администраторов магазинов.
type UserType string

const (
	UserTypeCustomer UserType = "CUSTOMER"
	UserTypeAdmin    UserType = "ADMIN"
)

// Коды типов в хранилище; в БД тип хранится как целое.
const (
	userTypeCustomerCode int32 = 0
	userTypeAdminCode    int32 = 1
)

// Valid сообщает, является ли значение известным типом пользователя.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeAdmin
}

// Code возвращает числовой код типа для хранения.
func (t UserType) Code() int32 {
	if t == UserTypeAdmin {
		return userTypeAdminCode
	}
	return userTypeCustomerCode
}

// UserTypeFromCode восстанавливает тип из числового кода.
func UserTypeFromCode(code int32) UserType {
	if code == userTypeAdminCode {
		return UserTypeAdmin
	}
	return UserTypeCustomer
}

// User — учётная запись покупателя или администратора магазина.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Salt         string
	FirstName    string
	LastName     string
	Type         UserType
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    time.Time
	// ManagedStoreID заполнен только у администраторов.
	ManagedStoreID *int64
}

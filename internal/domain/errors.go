package domain

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку сервисного слоя. Транспорт переводит Kind
// напрямую в HTTP-статус, поэтому конфликт бизнес-правила и запрет доступа
// представлены разными значениями.
type Kind string

const (
	// KindBadRequest — запрос не прошёл валидацию.
	KindBadRequest Kind = "bad_request"
	// KindUnauthorized — отсутствуют или недействительны учётные данные.
	KindUnauthorized Kind = "unauthorized"
	// KindForbidden — аутентифицирован, но операция запрещена.
	KindForbidden Kind = "forbidden"
	// KindConflict — нарушение бизнес-инварианта (занятая корзина, нехватка стока).
	KindConflict Kind = "conflict"
	// KindNotFound — запрошенная сущность не существует.
	KindNotFound Kind = "not_found"
	// KindInternal — неожиданная ошибка БД или другая внутренняя проблема.
	KindInternal Kind = "internal"
)

// Error — типизированная ошибка доменного слоя.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest создаёт ошибку валидации запроса.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Unauthorized создаёт ошибку аутентификации.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden создаёт ошибку авторизации.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Conflict создаёт ошибку нарушения бизнес-инварианта.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound создаёт ошибку отсутствующей сущности.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal оборачивает неожиданную ошибку хранилища или инфраструктуры.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf возвращает Kind ошибки; для нетипизированных ошибок — KindInternal.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}

// IsKind проверяет, относится ли ошибка к заданному Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Повторяющиеся бизнес-ошибки; тексты сообщений видны клиенту API.
var (
	// ErrCartExists — у покупателя уже есть активная корзина в этом магазине.
	ErrCartExists = Conflict("customer already has an active cart for this store")
	// ErrQuantityUnavailable — запрошенное количество превышает остаток.
	ErrQuantityUnavailable = Conflict("quantity not available")
	// ErrCartNotFound — корзина не существует.
	ErrCartNotFound = NotFound("shopping cart not found")
	// ErrProductItemNotFound — позиция каталога не существует или удалена.
	ErrProductItemNotFound = NotFound("product item not found")
	// ErrOrderItemNotFound — строка заказа не существует.
	ErrOrderItemNotFound = NotFound("order item not found")
	// ErrDuplicateOrderItem — в корзине больше одной строки на один товар;
	// нарушение целостности данных, а не бизнес-правила.
	ErrDuplicateOrderItem = &Error{Kind: KindInternal, Message: "duplicate order items for cart and product item"}
	// ErrEmailTaken — email уже зарегистрирован.
	ErrEmailTaken = Conflict("email already exists")
	// ErrUserNotFound — пользователь не существует.
	ErrUserNotFound = NotFound("user not found")
	// ErrInvalidCredentials — неизвестный email или неверный пароль;
	// намеренно один и тот же ответ, чтобы не раскрывать причину.
	ErrInvalidCredentials = Unauthorized("invalid email or password")
	// ErrInviteRequired — для регистрации администратора нужен код приглашения.
	ErrInviteRequired = Forbidden("invite code is required for admin users")
	// ErrInviteInvalid — код приглашения не существует или уже использован.
	ErrInviteInvalid = Forbidden("invite code is not valid")
	// ErrStoreNotFound — магазин не существует (у него нет администраторов).
	ErrStoreNotFound = NotFound("store not found")
	// ErrNotStoreAdmin — пользователь не управляет этим магазином.
	ErrNotStoreAdmin = Forbidden("user without permissions for this store")
	// ErrAddressNotFound — адрес не существует или принадлежит другому пользователю.
	ErrAddressNotFound = NotFound("address not found")
)

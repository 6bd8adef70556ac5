package domain

import (
	"context"
	"time"
)

// Transactor выполняет fn в рамках одной транзакции БД. Реализация
// прокидывает транзакцию через контекст; репозитории используют её
// прозрачно. При ошибке или панике транзакция откатывается.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository — хранилище учётных записей.
type UserRepository interface {
	// FindByEmail возвращает ErrUserNotFound, если email не зарегистрирован.
	FindByEmail(ctx context.Context, email string) (User, error)
	// Create возвращает id новой записи; занятый email — ErrEmailTaken.
	Create(ctx context.Context, user User) (int64, error)
	// TouchLastLogin обновляет отметку последнего входа.
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// StoreRepository — магазины, приглашения и справочники оплат/доставок.
type StoreRepository interface {
	Create(ctx context.Context, store Store) (int64, error)
	// AdminIDs возвращает id всех администраторов магазина; пустой срез
	// означает, что магазина не существует.
	AdminIDs(ctx context.Context, storeID int64) ([]int64, error)
	CreateInvite(ctx context.Context, invite StoreInvite) error
	// RedeemInvite атомарно гасит действующий код и возвращает id магазина;
	// неизвестный или погашенный код — ErrInviteInvalid.
	RedeemInvite(ctx context.Context, code string) (int64, error)
	CreatePaymentMethods(ctx context.Context, storeID int64, names []string) error
	CreateShippingMethods(ctx context.Context, storeID int64, names []string) error
}

// CatalogRepository — категории, варианты, товары и их позиции.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category ProductCategory) (int64, error)
	CreateVariant(ctx context.Context, variant ProductVariant) (int64, error)
	CreateProduct(ctx context.Context, product Product) (int64, error)
	CreateProductItems(ctx context.Context, items []ProductItem) error
	ListVariants(ctx context.Context, storeID int64) ([]ProductVariant, error)
}

// ProductItemRepository — выборка позиций каталога для операций корзины.
type ProductItemRepository interface {
	// Find возвращает неудалённую позицию или ErrProductItemNotFound.
	Find(ctx context.Context, id int64) (ProductItem, error)
	// FindForUpdate дополнительно ограничивает позицию магазином и берёт
	// блокировку строки; вызывается только внутри транзакции.
	FindForUpdate(ctx context.Context, id, storeID int64) (ProductItem, error)
}

// CartRepository — корзины покупателей.
type CartRepository interface {
	// FindActive возвращает корзину пары (покупатель, магазин)
	// или ErrCartNotFound.
	FindActive(ctx context.Context, customerID, storeID int64) (ShoppingCart, error)
	FindByID(ctx context.Context, id int64) (ShoppingCart, error)
	// Create возвращает id новой корзины; нарушение уникальности
	// (customer_id, store_id) — ErrCartExists.
	Create(ctx context.Context, cart ShoppingCart) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// OrderItemRepository — реестр строк корзин и заказов.
type OrderItemRepository interface {
	// FindByShoppingCart возвращает пустой срез, а не ошибку, если строк нет.
	FindByShoppingCart(ctx context.Context, cartID int64) ([]OrderItem, error)
	FindByCartAndProduct(ctx context.Context, cartID, productItemID int64) ([]OrderItem, error)
	Create(ctx context.Context, item OrderItem) (int64, error)
	// UpdateQuantity — безусловное обновление; проверка стока на вызывающем.
	UpdateQuantity(ctx context.Context, id int64, quantity int32) error
	// Delete удаляет строки по набору id; пустой набор — успешный no-op.
	Delete(ctx context.Context, ids []int64) error
}

// AddressRepository — адресная книга пользователя; все операции ограничены
// владельцем.
type AddressRepository interface {
	Find(ctx context.Context, id, userID int64) (Address, error)
	List(ctx context.Context, userID int64) ([]Address, error)
	Create(ctx context.Context, address Address) (int64, error)
	Update(ctx context.Context, address Address) error
	// Delete помечает адрес удалённым.
	Delete(ctx context.Context, id, userID int64) error
}

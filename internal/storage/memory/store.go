package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// state держит все таблицы в памяти под одним мьютексом.
type state struct {
	mu     sync.Mutex
	nextID map[string]int64

	users           map[int64]domain.User
	stores          map[int64]domain.Store
	invites         map[string]domain.StoreInvite
	paymentMethods  []domain.PaymentMethod
	shippingMethods []domain.ShippingMethod
	categories      map[int64]domain.ProductCategory
	variants        map[int64]domain.ProductVariant
	products        map[int64]domain.Product
	productItems    map[int64]domain.ProductItem
	carts           map[int64]domain.ShoppingCart
	orderItems      map[int64]domain.OrderItem
	addresses       map[int64]domain.Address
}

func (st *state) id(table string) int64 {
	st.nextID[table]++
	return st.nextID[table]
}

// Store — in-memory реализация всех репозиториев для тестов и локальной
// разработки. Семантика ошибок повторяет postgres-реализацию.
type Store struct {
	st *state
}

// NewStore создаёт пустое in-memory хранилище.
func NewStore() *Store {
	return &Store{st: &state{
		nextID:       make(map[string]int64),
		users:        make(map[int64]domain.User),
		stores:       make(map[int64]domain.Store),
		invites:      make(map[string]domain.StoreInvite),
		categories:   make(map[int64]domain.ProductCategory),
		variants:     make(map[int64]domain.ProductVariant),
		products:     make(map[int64]domain.Product),
		productItems: make(map[int64]domain.ProductItem),
		carts:        make(map[int64]domain.ShoppingCart),
		orderItems:   make(map[int64]domain.OrderItem),
		addresses:    make(map[int64]domain.Address),
	}}
}

// WithinTx выполняет fn как есть: in-memory хранилище не изолирует
// конкурентные операции, инварианты держатся на проверках репозиториев.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) Users() domain.UserRepository               { return &userRepo{st: s.st} }
func (s *Store) Stores() domain.StoreRepository             { return &storeRepo{st: s.st} }
func (s *Store) Catalog() domain.CatalogRepository          { return &catalogRepo{st: s.st} }
func (s *Store) ProductItems() domain.ProductItemRepository { return &productItemRepo{st: s.st} }
func (s *Store) Carts() domain.CartRepository               { return &cartRepo{st: s.st} }
func (s *Store) OrderItems() domain.OrderItemRepository     { return &orderItemRepo{st: s.st} }
func (s *Store) Addresses() domain.AddressRepository        { return &addressRepo{st: s.st} }

// SeedProductItem вставляет позицию каталога и возвращает её id;
// упрощает подготовку данных в тестах.
func (s *Store) SeedProductItem(item domain.ProductItem) int64 {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()

	item.ID = s.st.id("product_items")
	s.st.productItems[item.ID] = item
	return item.ID
}

// PaymentMethods возвращает копию всех способов оплаты (для проверок в тестах).
func (s *Store) PaymentMethods() []domain.PaymentMethod {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return append([]domain.PaymentMethod(nil), s.st.paymentMethods...)
}

// ShippingMethods возвращает копию всех способов доставки.
func (s *Store) ShippingMethods() []domain.ShippingMethod {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	return append([]domain.ShippingMethod(nil), s.st.shippingMethods...)
}

var _ domain.Transactor = (*Store)(nil)

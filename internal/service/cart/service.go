// Package cart реализует рабочий процесс корзины покупателя: единственная
// активная корзина на пару (покупатель, магазин), проверка остатка перед
// изменением количества, согласование строк корзины.
package cart

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service координирует поиск позиций каталога и реестр строк заказа
// внутри одной транзакции.
type Service struct {
	carts    domain.CartRepository
	items    domain.OrderItemRepository
	products domain.ProductItemRepository
	tx       domain.Transactor
	logger   *log.Entry
}

// NewService конструирует сервис корзины.
func NewService(
	carts domain.CartRepository,
	items domain.OrderItemRepository,
	products domain.ProductItemRepository,
	tx domain.Transactor,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "cart-service")
	}
	return &Service{
		carts:    carts,
		items:    items,
		products: products,
		tx:       tx,
		logger:   logger,
	}
}

// Create создаёт корзину с первой строкой.
func (s *Service) Create(ctx context.Context, customerID, storeID, productItemID int64, quantity int32) (int64, error) {
	var cartID int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Предварительная проверка даёт понятную ошибку; гонку двух
		// параллельных созданий добивает UNIQUE-ограничение в Create.
		if _, err := s.carts.FindActive(ctx, customerID, storeID); err == nil {
			return domain.ErrCartExists
		} else if !domain.IsKind(err, domain.KindNotFound) {
			return err
		}

		item, err := s.products.FindForUpdate(ctx, productItemID, storeID)
		if err != nil {
			return err
		}
		if quantity > item.Stock {
			return domain.ErrQuantityUnavailable
		}

		id, err := s.carts.Create(ctx, domain.ShoppingCart{
			CustomerID: customerID,
			StoreID:    storeID,
		})
		if err != nil {
			return err
		}

		// Цена фиксируется в момент создания строки.
		line := domain.OrderItem{
			UnitPrice:      item.Price,
			Quantity:       quantity,
			ProductItemID:  item.ID,
			ShoppingCartID: &id,
		}
		if err := line.Validate(); err != nil {
			return err
		}
		if _, err := s.items.Create(ctx, line); err != nil {
			return err
		}

		cartID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(log.Fields{
		"cart_id":     cartID,
		"customer_id": customerID,
		"store_id":    storeID,
	}).Info("shopping cart created")
	return cartID, nil
}

// Edit добавляет товар в корзину либо меняет количество существующей
// строки. Остаток проверяется по текущему стоку позиции, цена строки при
// изменении количества не пересчитывается.
func (s *Service) Edit(ctx context.Context, cartID, storeID, productItemID int64, quantity int32) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.carts.FindByID(ctx, cartID); err != nil {
			return err
		}

		existing, err := s.items.FindByCartAndProduct(ctx, cartID, productItemID)
		if err != nil {
			return err
		}
		if len(existing) > 1 {
			// Уникальный индекс не должен этого допускать.
			s.logger.WithFields(log.Fields{
				"cart_id":         cartID,
				"product_item_id": productItemID,
				"rows":            len(existing),
			}).Error("duplicate order items detected")
			return domain.ErrDuplicateOrderItem
		}

		item, err := s.products.FindForUpdate(ctx, productItemID, storeID)
		if err != nil {
			return err
		}
		if quantity > item.Stock {
			return domain.ErrQuantityUnavailable
		}

		if len(existing) == 0 {
			line := domain.OrderItem{
				UnitPrice:      item.Price,
				Quantity:       quantity,
				ProductItemID:  item.ID,
				ShoppingCartID: &cartID,
			}
			if err := line.Validate(); err != nil {
				return err
			}
			_, err := s.items.Create(ctx, line)
			return err
		}
		return s.items.UpdateQuantity(ctx, existing[0].ID, quantity)
	})
}

// Delete удаляет корзину вместе со строками. Строки удаляются первыми,
// чтобы не оставить висячих ссылок на корзину.
func (s *Service) Delete(ctx context.Context, cartID int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.carts.FindByID(ctx, cartID); err != nil {
			return err
		}

		items, err := s.items.FindByShoppingCart(ctx, cartID)
		if err != nil {
			return err
		}
		if len(items) > 0 {
			ids := make([]int64, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			if err := s.items.Delete(ctx, ids); err != nil {
				return err
			}
		}

		return s.carts.Delete(ctx, cartID)
	})
	if err != nil {
		return err
	}

	s.logger.WithField("cart_id", cartID).Info("shopping cart deleted")
	return nil
}

// Items возвращает строки корзины.
func (s *Service) Items(ctx context.Context, cartID int64) ([]domain.OrderItem, error) {
	items, err := s.items.FindByShoppingCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}
	return items, nil
}

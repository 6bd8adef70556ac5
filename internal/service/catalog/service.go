// Package catalog управляет каталогом магазина: категориями, вариантами,
// товарами и их позициями.
package catalog

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/storeadmin"
)

const (
	nameMinLength = 2
	nameMaxLength = 60
)

// Service — операции каталога; все записи доступны только администратору
// магазина.
type Service struct {
	catalog domain.CatalogRepository
	admin   *storeadmin.Checker
	tx      domain.Transactor
	logger  *log.Entry
}

// NewService конструирует сервис каталога.
func NewService(
	catalog domain.CatalogRepository,
	admin *storeadmin.Checker,
	tx domain.Transactor,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog-service")
	}
	return &Service{
		catalog: catalog,
		admin:   admin,
		tx:      tx,
		logger:  logger,
	}
}

// CreateCategory создаёт категорию каталога.
func (s *Service) CreateCategory(ctx context.Context, name string, storeID, userID int64) (int64, error) {
	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return 0, domain.BadRequest("category name length must be between 2 and 60")
	}
	if err := s.admin.Check(ctx, storeID, userID); err != nil {
		return 0, err
	}

	return s.catalog.CreateCategory(ctx, domain.ProductCategory{
		Name:    name,
		StoreID: storeID,
	})
}

// CreateVariant создаёт вариант товара.
func (s *Service) CreateVariant(ctx context.Context, name, value string, storeID, userID int64) (int64, error) {
	if len(name) < nameMinLength || len(name) > nameMaxLength {
		return 0, domain.BadRequest("variant name length must be between 2 and 60")
	}
	if err := s.admin.Check(ctx, storeID, userID); err != nil {
		return 0, err
	}

	return s.catalog.CreateVariant(ctx, domain.ProductVariant{
		Name:    name,
		Value:   value,
		StoreID: storeID,
	})
}

// ProductItemInput — позиция нового товара.
type ProductItemInput struct {
	SKU         *string
	ImageURL    *string
	Description *string
	Price       decimal.Decimal
	Stock       int32
	VariantID   *int64
}

// CreateProductInput — данные нового товара с позициями.
type CreateProductInput struct {
	Name       string
	CategoryID int64
	StoreID    int64
	UserID     int64
	Items      []ProductItemInput
}

// CreateProduct создаёт товар и его позиции одной транзакцией: товар без
// позиций в каталоге не появляется.
func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (int64, error) {
	if len(in.Name) < nameMinLength || len(in.Name) > nameMaxLength {
		return 0, domain.BadRequest("product name length must be between 2 and 60")
	}
	if len(in.Items) == 0 {
		return 0, domain.BadRequest("missing product data")
	}
	if err := s.admin.Check(ctx, in.StoreID, in.UserID); err != nil {
		return 0, err
	}

	var productID int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.catalog.CreateProduct(ctx, domain.Product{
			Name:       in.Name,
			StoreID:    in.StoreID,
			CategoryID: in.CategoryID,
		})
		if err != nil {
			return err
		}

		items := make([]domain.ProductItem, 0, len(in.Items))
		for _, item := range in.Items {
			items = append(items, domain.ProductItem{
				SKU:         item.SKU,
				ImageURL:    item.ImageURL,
				Description: item.Description,
				Price:       item.Price,
				Stock:       item.Stock,
				VariantID:   item.VariantID,
				ProductID:   id,
				StoreID:     in.StoreID,
			})
		}
		if err := s.catalog.CreateProductItems(ctx, items); err != nil {
			return err
		}

		productID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(log.Fields{
		"product_id": productID,
		"store_id":   in.StoreID,
		"items":      len(in.Items),
	}).Info("product created")
	return productID, nil
}

// ListVariants возвращает варианты магазина.
func (s *Service) ListVariants(ctx context.Context, storeID int64) ([]domain.ProductVariant, error) {
	return s.catalog.ListVariants(ctx, storeID)
}

// Package storeadmin отвечает на один вопрос: управляет ли пользователь
// данным магазином.
package storeadmin

import (
	"context"
	"fmt"
	"slices"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Checker проверяет права администратора магазина.
type Checker struct {
	stores domain.StoreRepository
}

// NewChecker создаёт проверку поверх репозитория магазинов.
func NewChecker(stores domain.StoreRepository) *Checker {
	return &Checker{stores: stores}
}

// Check возвращает nil, если userID администрирует storeID.
// Магазин без администраторов считается несуществующим.
func (c *Checker) Check(ctx context.Context, storeID, userID int64) error {
	adminIDs, err := c.stores.AdminIDs(ctx, storeID)
	if err != nil {
		return fmt.Errorf("load store admins: %w", err)
	}

	if len(adminIDs) == 0 {
		return domain.ErrStoreNotFound
	}
	if !slices.Contains(adminIDs, userID) {
		return domain.ErrNotStoreAdmin
	}
	return nil
}

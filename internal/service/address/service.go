// Package address — адресная книга пользователя.
package address

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service — CRUD адресной книги. Все операции привязаны к владельцу:
// чужой адрес неотличим от несуществующего.
type Service struct {
	addresses domain.AddressRepository
	logger    *log.Entry
}

func NewService(addresses domain.AddressRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "address-service")
	}
	return &Service{addresses: addresses, logger: logger}
}

func (s *Service) Find(ctx context.Context, id, userID int64) (domain.Address, error) {
	return s.addresses.Find(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Address, error) {
	return s.addresses.List(ctx, userID)
}

func (s *Service) Create(ctx context.Context, address domain.Address) (int64, error) {
	id, err := s.addresses.Create(ctx, address)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(log.Fields{
		"address_id": id,
		"user_id":    address.UserID,
	}).Info("address created")
	return id, nil
}

// Update перезаписывает адрес целиком; адрес должен принадлежать пользователю.
func (s *Service) Update(ctx context.Context, address domain.Address) error {
	if _, err := s.addresses.Find(ctx, address.ID, address.UserID); err != nil {
		return err
	}
	return s.addresses.Update(ctx, address)
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.addresses.Delete(ctx, id, userID)
}

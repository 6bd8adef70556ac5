// Package account обслуживает регистрацию, вход, создание магазинов и
// коды приглашений администраторов.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/auth"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/storeadmin"
)

// Service управляет учётными записями и магазинами.
type Service struct {
	users  domain.UserRepository
	stores domain.StoreRepository
	admin  *storeadmin.Checker
	tx     domain.Transactor
	tokens *auth.TokenIssuer
	logger *log.Entry
	now    func() time.Time
}

// NewService конструирует сервис с зависимостями.
func NewService(
	users domain.UserRepository,
	stores domain.StoreRepository,
	admin *storeadmin.Checker,
	tx domain.Transactor,
	tokens *auth.TokenIssuer,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "account-service")
	}
	return &Service{
		users:  users,
		stores: stores,
		admin:  admin,
		tx:     tx,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// SignupInput — данные регистрации пользователя.
type SignupInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	InviteCode *string
	Type       domain.UserType
}

// Signup регистрирует покупателя или администратора. Администратору нужен
// действующий код приглашения; код гасится и пользователь создаётся в одной
// транзакции.
func (s *Service) Signup(ctx context.Context, in SignupInput) (int64, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return 0, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return 0, domain.Internal("hash password", err)
	}

	user := domain.User{
		Email:        in.Email,
		PasswordHash: hashed.Hash,
		Salt:         hashed.Salt,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Type:         in.Type,
	}

	var id int64
	switch in.Type {
	case domain.UserTypeAdmin:
		if in.InviteCode == nil {
			return 0, domain.ErrInviteRequired
		}
		err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
			storeID, err := s.stores.RedeemInvite(ctx, *in.InviteCode)
			if err != nil {
				return err
			}
			user.ManagedStoreID = &storeID
			id, err = s.users.Create(ctx, user)
			return err
		})
	case domain.UserTypeCustomer:
		id, err = s.users.Create(ctx, user)
	default:
		return 0, domain.BadRequest("unknown user type")
	}
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(log.Fields{"user_id": id, "type": in.Type}).Info("user signed up")
	return id, nil
}

// LoginInput — данные входа.
type LoginInput struct {
	Email    string
	Password string
}

// Login проверяет пароль и выпускает сессионный токен. Неизвестный email и
// неверный пароль дают одинаковый ответ.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(in.Password, user.PasswordHash, user.Salt) {
		return "", domain.ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		return "", fmt.Errorf("touch last login: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", domain.Internal("issue token", err)
	}
	return token, nil
}

// CreateStoreInput — данные создания магазина вместе с его администратором.
type CreateStoreInput struct {
	StoreName string
	LogoURL   *string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateStore создаёт магазин, его первого администратора и наборы способов
// оплаты и доставки по умолчанию — всё в одной транзакции.
func (s *Service) CreateStore(ctx context.Context, in CreateStoreInput) (int64, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return 0, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return 0, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return 0, domain.Internal("hash password", err)
	}

	var storeID int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		storeID, err = s.stores.Create(ctx, domain.Store{
			Name:    in.StoreName,
			LogoURL: in.LogoURL,
		})
		if err != nil {
			return err
		}

		if _, err := s.users.Create(ctx, domain.User{
			Email:          in.Email,
			PasswordHash:   hashed.Hash,
			Salt:           hashed.Salt,
			FirstName:      in.FirstName,
			LastName:       in.LastName,
			Type:           domain.UserTypeAdmin,
			ManagedStoreID: &storeID,
		}); err != nil {
			return err
		}

		if err := s.stores.CreatePaymentMethods(ctx, storeID, domain.DefaultPaymentMethods); err != nil {
			return err
		}
		return s.stores.CreateShippingMethods(ctx, storeID, domain.DefaultShippingMethods)
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithField("store_id", storeID).Info("store created")
	return storeID, nil
}

// CreateInvite выпускает одноразовый код приглашения администратора.
// Доступно только действующему администратору магазина.
func (s *Service) CreateInvite(ctx context.Context, storeID, userID int64) (string, error) {
	if err := s.admin.Check(ctx, storeID, userID); err != nil {
		return "", err
	}

	invite := domain.StoreInvite{
		ID:      uuid.NewString(),
		Valid:   true,
		StoreID: storeID,
	}
	if err := s.stores.CreateInvite(ctx, invite); err != nil {
		return "", err
	}

	s.logger.WithField("store_id", storeID).Info("store invite created")
	return invite.ID, nil
}

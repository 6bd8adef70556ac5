package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type storeRepository struct {
	store *Store
}

// NewStoreRepository создаёт PostgreSQL-реализацию StoreRepository.
func NewStoreRepository(store *Store) domain.StoreRepository {
	return &storeRepository{store: store}
}

func (r *storeRepository) Create(ctx context.Context, s domain.Store) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var logo sql.NullString
	if s.LogoURL != nil {
		logo = sql.NullString{String: *s.LogoURL, Valid: true}
	}

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO stores (name, logo_url)
		VALUES ($1, $2)
		RETURNING id
	`, s.Name, logo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert store: %w", err)
	}
	return id, nil
}

func (r *storeRepository) AdminIDs(ctx context.Context, storeID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.q(ctx).QueryContext(ctx, `
		SELECT id
		FROM users
		WHERE managed_store_id = $1
		ORDER BY id
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("select store admins: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan store admin id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store admins: %w", err)
	}

	return ids, nil
}

func (r *storeRepository) CreateInvite(ctx context.Context, invite domain.StoreInvite) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.store.q(ctx).ExecContext(ctx, `
		INSERT INTO store_invites (id, valid, store_id)
		VALUES ($1, $2, $3)
	`, invite.ID, invite.Valid, invite.StoreID); err != nil {
		return fmt.Errorf("insert store invite: %w", err)
	}
	return nil
}

func (r *storeRepository) RedeemInvite(ctx context.Context, code string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Код гасится тем же оператором, которым читается: второй претендент
	// на тот же код не найдёт строку с valid = true.
	var storeID int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		UPDATE store_invites
		SET valid = FALSE
		WHERE id = $1 AND valid
		RETURNING store_id
	`, code).Scan(&storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrInviteInvalid
		}
		return 0, fmt.Errorf("redeem store invite: %w", err)
	}
	return storeID, nil
}

func (r *storeRepository) CreatePaymentMethods(ctx context.Context, storeID int64, names []string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	for _, name := range names {
		if _, err := r.store.q(ctx).ExecContext(ctx, `
			INSERT INTO payment_methods (name, store_id)
			VALUES ($1, $2)
		`, name, storeID); err != nil {
			return fmt.Errorf("insert payment method %q: %w", name, err)
		}
	}
	return nil
}

func (r *storeRepository) CreateShippingMethods(ctx context.Context, storeID int64, names []string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	for _, name := range names {
		if _, err := r.store.q(ctx).ExecContext(ctx, `
			INSERT INTO shipping_methods (name, store_id)
			VALUES ($1, $2)
		`, name, storeID); err != nil {
			return fmt.Errorf("insert shipping method %q: %w", name, err)
		}
	}
	return nil
}

var _ domain.StoreRepository = (*storeRepository)(nil)

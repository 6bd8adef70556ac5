package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type userRepository struct {
	store *Store
}

// NewUserRepository создаёт PostgreSQL-реализацию UserRepository.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		user         domain.User
		typeCode     int32
		managedStore sql.NullInt64
	)
	err := r.store.q(ctx).QueryRowContext(ctx, `
		SELECT id, email, password_hash, salt, first_name, last_name,
		       user_type, created_at, updated_at, last_login, managed_store_id
		FROM users
		WHERE email = $1
	`, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Salt,
		&user.FirstName, &user.LastName, &typeCode,
		&user.CreatedAt, &user.UpdatedAt, &user.LastLogin, &managedStore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("select user by email: %w", err)
	}

	user.Type = domain.UserTypeFromCode(typeCode)
	if managedStore.Valid {
		user.ManagedStoreID = &managedStore.Int64
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user domain.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var managedStore sql.NullInt64
	if user.ManagedStoreID != nil {
		managedStore = sql.NullInt64{Int64: *user.ManagedStoreID, Valid: true}
	}

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO users (
			email, password_hash, salt, first_name, last_name, user_type, managed_store_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		user.Email, user.PasswordHash, user.Salt,
		user.FirstName, user.LastName, user.Type.Code(), managedStore,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, constraintUsersEmail) {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.q(ctx).ExecContext(ctx, `
		UPDATE users
		SET last_login = $1, updated_at = $1
		WHERE id = $2
	`, at, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

var _ domain.UserRepository = (*userRepository)(nil)

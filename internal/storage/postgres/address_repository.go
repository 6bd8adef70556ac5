package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type addressRepository struct {
	store *Store
}

// NewAddressRepository создаёт PostgreSQL-реализацию AddressRepository.
func NewAddressRepository(store *Store) domain.AddressRepository {
	return &addressRepository{store: store}
}

const addressColumns = `
	id, address_line1, address_line2, number, city, country, postal_code,
	phone_country_code, phone_number, deleted, created_at, updated_at, user_id`

func (r *addressRepository) Find(ctx context.Context, id, userID int64) (domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.store.q(ctx).QueryRowContext(ctx, `
		SELECT`+addressColumns+`
		FROM user_addresses
		WHERE id = $1 AND user_id = $2 AND deleted = FALSE
	`, id, userID)

	address, err := scanAddress(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Address{}, domain.ErrAddressNotFound
		}
		return domain.Address{}, fmt.Errorf("select address: %w", err)
	}
	return address, nil
}

func (r *addressRepository) List(ctx context.Context, userID int64) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.q(ctx).QueryContext(ctx, `
		SELECT`+addressColumns+`
		FROM user_addresses
		WHERE user_id = $1 AND deleted = FALSE
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}

	return addresses, nil
}

func (r *addressRepository) Create(ctx context.Context, address domain.Address) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var id int64
	err := r.store.q(ctx).QueryRowContext(ctx, `
		INSERT INTO user_addresses (
			address_line1, address_line2, number, city, country, postal_code,
			phone_country_code, phone_number, user_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		address.AddressLine1, nullString(address.AddressLine2), address.Number,
		address.City, address.Country, address.PostalCode,
		nullString(address.PhoneCountryCode), nullString(address.PhoneNumber),
		address.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert address: %w", err)
	}
	return id, nil
}

func (r *addressRepository) Update(ctx context.Context, address domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.q(ctx).ExecContext(ctx, `
		UPDATE user_addresses
		SET address_line1 = $1,
		    address_line2 = $2,
		    number = $3,
		    city = $4,
		    country = $5,
		    postal_code = $6,
		    phone_country_code = $7,
		    phone_number = $8,
		    updated_at = NOW()
		WHERE id = $9
		  AND user_id = $10
		  AND deleted = FALSE
	`,
		address.AddressLine1, nullString(address.AddressLine2), address.Number,
		address.City, address.Country, address.PostalCode,
		nullString(address.PhoneCountryCode), nullString(address.PhoneNumber),
		address.ID, address.UserID,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.q(ctx).ExecContext(ctx, `
		UPDATE user_addresses
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted = FALSE
	`, id, userID)
	if err != nil {
		return fmt.Errorf("soft delete address: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func scanAddress(scan func(dest ...any) error) (domain.Address, error) {
	var (
		address   domain.Address
		line2     sql.NullString
		phoneCode sql.NullString
		phone     sql.NullString
	)
	if err := scan(
		&address.ID, &address.AddressLine1, &line2, &address.Number,
		&address.City, &address.Country, &address.PostalCode,
		&phoneCode, &phone, &address.Deleted,
		&address.CreatedAt, &address.UpdatedAt, &address.UserID,
	); err != nil {
		return domain.Address{}, err
	}

	if line2.Valid {
		address.AddressLine2 = &line2.String
	}
	if phoneCode.Valid {
		address.PhoneCountryCode = &phoneCode.String
	}
	if phone.Valid {
		address.PhoneNumber = &phone.String
	}
	return address, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

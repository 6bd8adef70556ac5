package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Таймаут одиночной операции с БД.
const opTimeout = 5 * time.Second

const uniqueViolationCode = "23505"

// Имена ограничений из миграций; по ним нарушения уникальности
// переводятся в доменные ошибки.
const (
	constraintUsersEmail        = "users_email_key"
	constraintCartCustomerStore = "shopping_carts_customer_store_key"
	constraintCartProductItem   = "order_items_cart_product_key"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
	}
	return false
}

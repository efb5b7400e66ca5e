package store

import (
	"database/sql"
	"fmt"
	"time"

	"unclefries-order-backend/internal/db"
)

// OrderStore journals checkout sessions and payment confirmations in
// PostgreSQL. It is optional wiring: when no database is configured the
// rest of the system runs without it.
type OrderStore struct {
	db *db.DB
}

func NewOrderStore(database *db.DB) *OrderStore {
	return &OrderStore{db: database}
}

// Order is one journaled checkout session.
type Order struct {
	Reference  string
	UserID     string
	Items      string
	TotalNaira int
	Address    string
	Status     string
	PaidKobo   sql.NullInt64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SaveOrder records a freshly initialized checkout session.
func (os *OrderStore) SaveOrder(reference, userID, items string, totalNaira int, address string) error {
	if reference == "" || userID == "" {
		return fmt.Errorf("reference and user_id are required")
	}

	query := `
		INSERT INTO orders (reference, user_id, items, total_naira, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'initiated', NOW(), NOW())
		ON CONFLICT (reference)
		DO UPDATE SET
			items = EXCLUDED.items,
			total_naira = EXCLUDED.total_naira,
			address = EXCLUDED.address,
			updated_at = NOW()
	`

	_, err := os.db.Exec(query, reference, userID, items, totalNaira, address)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// MarkPaid flags an order as paid after a verified charge.success event.
func (os *OrderStore) MarkPaid(reference string, amountKobo int64) error {
	if reference == "" {
		return fmt.Errorf("reference is required")
	}

	query := `
		UPDATE orders
		SET status = 'paid', paid_kobo = $2, updated_at = NOW()
		WHERE reference = $1
	`
	_, err := os.db.Exec(query, reference, amountKobo)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	return nil
}

// GetOrder retrieves one journaled order; nil when not found.
func (os *OrderStore) GetOrder(reference string) (*Order, error) {
	if reference == "" {
		return nil, fmt.Errorf("reference is required")
	}

	var o Order
	query := `
		SELECT reference, user_id, items, total_naira, address, status, paid_kobo, created_at, updated_at
		FROM orders
		WHERE reference = $1
	`
	err := os.db.QueryRow(query, reference).Scan(
		&o.Reference,
		&o.UserID,
		&o.Items,
		&o.TotalNaira,
		&o.Address,
		&o.Status,
		&o.PaidKobo,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &o, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// OrderRepository implements secondary.OrderRepository with SQLite.
// The purchased lines are frozen into the order row as a JSON snapshot.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new SQLite order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order and returns its row id.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (int, error) {
	snapshot, err := json.Marshal(order.Lines)
	if err != nil {
		return 0, fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	status := order.PaymentStatus
	if status == "" {
		status = models.PaymentStatusPending
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO orders (reference, name, email, phone, address, cart_snapshot, total_price, amount_paisa, payment_status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		order.Reference, order.Customer.Name, order.Customer.Email, order.Customer.Phone, order.Customer.Address,
		string(snapshot), order.TotalPrice, order.AmountPaisa, status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read order id: %w", err)
	}
	return int(id), nil
}

// GetByReference retrieves an order by its public reference.
func (r *OrderRepository) GetByReference(ctx context.Context, reference string) (*models.Order, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, reference, name, email, phone, address, cart_snapshot, total_price, amount_paisa, payment_status, payment_id, created_at, paid_at FROM orders WHERE reference = ?",
		reference,
	)
	return scanOrder(row)
}

// List retrieves the most recent orders, newest first.
func (r *OrderRepository) List(ctx context.Context, limit int) ([]*models.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, reference, name, email, phone, address, cart_snapshot, total_price, amount_paisa, payment_status, payment_id, created_at, paid_at FROM orders ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// MarkPaid records a completed payment against the order.
func (r *OrderRepository) MarkPaid(ctx context.Context, reference, paymentID string, paidAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET payment_status = ?, payment_id = ?, paid_at = ? WHERE reference = ?",
		models.PaymentStatusCompleted, paymentID, paidAt, reference,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if n == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		order     models.Order
		phone     sql.NullString
		address   sql.NullString
		snapshot  string
		paymentID sql.NullString
		paidAt    sql.NullTime
	)

	err := row.Scan(&order.ID, &order.Reference, &order.Customer.Name, &order.Customer.Email, &phone, &address,
		&snapshot, &order.TotalPrice, &order.AmountPaisa, &order.PaymentStatus, &paymentID, &order.CreatedAt, &paidAt)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	order.Customer.Phone = phone.String
	order.Customer.Address = address.String
	order.PaymentID = paymentID.String
	if paidAt.Valid {
		t := paidAt.Time
		order.PaidAt = &t
	}
	if err := json.Unmarshal([]byte(snapshot), &order.Lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot for order %s: %w", order.Reference, err)
	}
	return &order, nil
}

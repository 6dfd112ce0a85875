package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"overol-freefly/models"
)

// orderRow is the flat orders table row
type orderRow struct {
	ID            string    `db:"id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`
	CustomerEmail string    `db:"customer_email"`
	CustomerDate  string    `db:"customer_date"`
	CreatedAt     time.Time `db:"created_at"`
	DocumentPath  string    `db:"document_path"`
}

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// Insert stores an order and its selections in a single transaction.
// Selections keep their submission order through the position column.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	log.Printf("📦 Insert: order id=%s with %d selections", order.ID, len(order.Selections))

	if order.DocumentPath == "" {
		return fmt.Errorf("order %s has no document path", order.ID)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Printf("❌ Insert: Error starting transaction: %v", err)
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	queryOrder := tx.Rebind(`
		INSERT INTO orders (id, customer_name, customer_phone, customer_email, customer_date, created_at, document_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err = tx.ExecContext(ctx, queryOrder,
		order.ID,
		order.CustomerInfo.Name,
		order.CustomerInfo.Phone,
		order.CustomerInfo.Email,
		order.CustomerInfo.Date,
		order.CreatedAt.UTC(),
		order.DocumentPath,
	)
	if err != nil {
		log.Printf("❌ Insert: Error inserting order: %v", err)
		return fmt.Errorf("failed to insert order: %w", err)
	}

	querySelection := tx.Rebind(`
		INSERT INTO order_selections (order_id, position, area_id, fabric_type, color_id, color_hex)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	for i, selection := range order.Selections {
		_, err := tx.ExecContext(ctx, querySelection,
			order.ID, i, selection.AreaID, selection.FabricType, selection.ColorID, selection.ColorHex)
		if err != nil {
			log.Printf("❌ Insert: Error inserting selection %d: %v", i, err)
			return fmt.Errorf("failed to insert order selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Insert: Error committing transaction: %v", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Insert: Successfully stored order id=%s", order.ID)
	return nil
}

// FindByID retrieves an order with its selections in submission order
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	queryOrder := r.db.Rebind(`
		SELECT id, customer_name, customer_phone, customer_email, customer_date, created_at, document_path
		FROM orders
		WHERE id = ?
	`)

	var row orderRow
	if err := r.db.GetContext(ctx, &row, queryOrder, id); err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		log.Printf("❌ FindByID: Error fetching order id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	querySelections := r.db.Rebind(`
		SELECT area_id, fabric_type, color_id, color_hex
		FROM order_selections
		WHERE order_id = ?
		ORDER BY position
	`)

	selections := []models.SuitSelection{}
	if err := r.db.SelectContext(ctx, &selections, querySelections, id); err != nil {
		log.Printf("❌ FindByID: Error fetching selections for order id=%s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch order selections: %w", err)
	}

	return &models.Order{
		ID: row.ID,
		CustomerInfo: models.CustomerInfo{
			Name:  row.CustomerName,
			Phone: row.CustomerPhone,
			Email: row.CustomerEmail,
			Date:  row.CustomerDate,
		},
		Selections:   selections,
		CreatedAt:    row.CreatedAt.UTC(),
		DocumentPath: row.DocumentPath,
	}, nil
}

package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders and their lines.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems persists the order row and every order item as one
// transaction. A failure on any row rolls back the whole order; no partial
// order is ever visible to another reader.
func (r *OrderRepository) CreateWithItems(order *models.Order) error {
	items := order.Items
	order.Items = nil

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// A line whose catalogue item vanished between validation and commit
		// fails the foreign key. That is stale caller input, not a server
		// fault.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.ValidationField("items", "Unknown catalogue item.")
		}
		return translate(err, "order")
	}

	order.Items = items
	return nil
}

// FindByID loads an order with its items.
func (r *OrderRepository) FindByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err, "order")
	}
	return &order, nil
}

// ListByUser returns all orders of one user, most recent first.
func (r *OrderRepository) ListByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, translate(err, "order")
	}
	return orders, nil
}

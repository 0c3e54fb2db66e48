package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderStatusPending = "pending"
)

// Order is a committed purchase. TotalAmount is computed once at creation
// from the line-item snapshots and never re-derived. The shipping address
// is denormalised onto the row.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Status      string          `gorm:"size:50;not null;default:'pending'" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Street      string          `gorm:"size:255;not null" json:"street"`
	HouseNumber string          `gorm:"size:50;not null" json:"house_number"`
	PostalCode  string          `gorm:"size:20;not null" json:"postal_code"`
	City        string          `gorm:"size:100;not null" json:"city"`
	Country     string          `gorm:"size:100;not null;default:'Nederland'" json:"country"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is one purchased line. ProductName and ProductPrice are copies
// taken at purchase time; ItemID is a weak link back to the catalogue and
// is nulled when the catalogue row is deleted.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemID       *uuid.UUID      `gorm:"type:uuid;index" json:"item_id,omitempty"`
	Item         *Item           `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	ProductName  string          `gorm:"size:255;not null" json:"product_name"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"product_price"`
	Quantity     int             `gorm:"not null;default:1" json:"quantity"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

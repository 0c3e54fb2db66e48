package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"github.com/shashiranjanraj/winkel/pkg/validate"
	"github.com/shopspring/decimal"
)

// OrderLineInput is one requested line. Name and price are the caller's
// snapshot of the product at the moment of purchase; they are stored as-is
// and never re-read from the catalogue afterwards.
type OrderLineInput struct {
	ItemID       string          `json:"item_id"       validate:"nullable,uuid"`
	ProductName  string          `json:"product_name"  validate:"required,max=255"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"      validate:"required,gte=1"`
}

// AddressInput is the denormalised shipping address.
type AddressInput struct {
	Street      string `json:"street"       validate:"required,max=255"`
	HouseNumber string `json:"house_number" validate:"required,max=50"`
	PostalCode  string `json:"postal_code"  validate:"required,max=20"`
	City        string `json:"city"         validate:"required,max=100"`
	Country     string `json:"country"      validate:"nullable,max=100"`
}

// OrderInput is the create-order payload.
type OrderInput struct {
	Items   []OrderLineInput `json:"items"`
	Address AddressInput     `json:"address"`
}

type OrderService struct {
	orders *repositories.OrderRepository
	items  *repositories.ItemRepository

	// priceCheck re-validates caller prices against the live catalogue.
	// Off by default: the stored line is a snapshot of what the buyer was
	// shown, and the shop owner accepts the client as the price source.
	priceCheck bool
}

func NewOrderService(orders *repositories.OrderRepository, items *repositories.ItemRepository, priceCheck bool) *OrderService {
	return &OrderService{orders: orders, items: items, priceCheck: priceCheck}
}

// Create validates the line items and address, computes the total as the
// sum of price times quantity over all lines, and commits the order row
// plus all line rows in a single transaction.
//
// Prices are constrained to cent precision, so the sum over lines with
// integer quantities is exact; no rounding ever happens after this point.
func (s *OrderService) Create(userID uuid.UUID, in OrderInput) (*models.Order, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	total := decimal.Zero
	lines := make([]models.OrderItem, 0, len(in.Items))
	for i, line := range in.Items {
		var itemID *uuid.UUID
		if line.ItemID != "" {
			id, err := uuid.Parse(line.ItemID)
			if err != nil {
				return nil, apperr.ValidationField(lineField(i, "item_id"), "The item_id must be a valid UUID.")
			}
			item, err := s.items.FindByID(id)
			if err != nil {
				if errors.Is(err, apperr.ErrNotFound) {
					return nil, apperr.ValidationField(lineField(i, "item_id"), "Unknown catalogue item.")
				}
				return nil, err
			}
			if s.priceCheck && !item.Price.Equal(line.ProductPrice) {
				return nil, apperr.ValidationField(lineField(i, "product_price"),
					fmt.Sprintf("Price does not match the catalogue (expected %s).", item.Price))
			}
			itemID = &id
		}

		lines = append(lines, models.OrderItem{
			ItemID:       itemID,
			ProductName:  line.ProductName,
			ProductPrice: line.ProductPrice,
			Quantity:     line.Quantity,
		})
		total = total.Add(line.ProductPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	country := in.Address.Country
	if country == "" {
		country = "Nederland"
	}

	order := &models.Order{
		UserID:      userID,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
		Street:      in.Address.Street,
		HouseNumber: in.Address.HouseNumber,
		PostalCode:  in.Address.PostalCode,
		City:        in.Address.City,
		Country:     country,
		Items:       lines,
	}
	if err := s.orders.CreateWithItems(order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListMine returns the caller's own orders, most recent first.
func (s *OrderService) ListMine(userID uuid.UUID) ([]models.Order, error) {
	return s.orders.ListByUser(userID)
}

// Get returns one order. NotFound wins over ownership: a missing id is 404
// for every caller, an existing order is Forbidden unless the caller owns
// it or is an admin.
func (s *OrderService) Get(callerID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID && !isAdmin {
		return nil, apperr.Forbidden("not your order")
	}
	return order, nil
}

func (s *OrderService) validateInput(in OrderInput) error {
	errs := make(map[string]string)

	if len(in.Items) == 0 {
		errs["items"] = "The items field is required."
	}
	for i, line := range in.Items {
		for field, msg := range validate.Struct(line) {
			errs[lineField(i, field)] = msg
		}
		if line.ProductPrice.IsNegative() {
			errs[lineField(i, "product_price")] = "The product_price may not be negative."
		} else if !line.ProductPrice.Equal(line.ProductPrice.Round(2)) {
			errs[lineField(i, "product_price")] = "The product_price may not have more than two decimal places."
		}
	}
	for field, msg := range validate.Struct(in.Address) {
		errs["address."+field] = msg
	}

	if len(errs) > 0 {
		return apperr.Validation(errs)
	}
	return nil
}

func lineField(i int, field string) string {
	return fmt.Sprintf("items.%d.%s", i, field)
}

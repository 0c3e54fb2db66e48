package services

import (
	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"github.com/shashiranjanraj/winkel/pkg/validate"
	"github.com/shopspring/decimal"
)

// ItemInput is the create-item payload.
type ItemInput struct {
	Name        string          `json:"name"        validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"   validate:"nullable,url"`
	Category    string          `json:"category"    validate:"nullable,max=100"`
	Stock       int             `json:"stock"       validate:"gte=0"`
}

// ItemPatch is a partial update: only non-nil fields are applied.
type ItemPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
	IsActive    *bool            `json:"is_active"`
}

type CatalogService struct {
	items *repositories.ItemRepository
}

func NewCatalogService(items *repositories.ItemRepository) *CatalogService {
	return &CatalogService{items: items}
}

// List returns a page of active items. Listing is public and filters on
// the active flag only.
func (s *CatalogService) List(skip, limit int) ([]models.Item, error) {
	return s.items.ListActive(skip, clampLimit(limit))
}

// Get returns any item by id, active or not.
func (s *CatalogService) Get(id uuid.UUID) (*models.Item, error) {
	return s.items.FindByID(id)
}

// Create adds a catalogue item. New items start active.
func (s *CatalogService) Create(in ItemInput) (*models.Item, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, apperr.Validation(errs)
	}
	if in.Price.IsNegative() {
		return nil, apperr.ValidationField("price", "The price may not be negative.")
	}

	item := &models.Item{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Stock:       in.Stock,
		IsActive:    true,
	}
	if err := s.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies the patch field by field; absent fields keep their value.
func (s *CatalogService) Update(id uuid.UUID, patch ItemPatch) (*models.Item, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperr.ValidationField("name", "The name field is required.")
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, apperr.ValidationField("price", "The price may not be negative.")
		}
		item.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return nil, apperr.ValidationField("stock", "The stock may not be negative.")
		}
		item.Stock = *patch.Stock
	}
	if patch.IsActive != nil {
		item.IsActive = *patch.IsActive
	}

	if err := s.items.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item from the catalogue. Order history referencing it
// keeps its snapshots; the item link is nulled by the store.
func (s *CatalogService) Delete(id uuid.UUID) error {
	return s.items.Delete(id)
}

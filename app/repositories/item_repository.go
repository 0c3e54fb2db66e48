package repositories

import (
	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"gorm.io/gorm"
)

// ItemRepository handles database operations for catalogue items.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *models.Item) error {
	return translate(r.db.Create(item).Error, "item")
}

// FindByID returns the item regardless of its active flag; the public
// detail route serves inactive items too, matching the listing asymmetry.
func (r *ItemRepository) FindByID(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err, "item")
	}
	return &item, nil
}

// ListActive returns active items with skip/limit pagination.
func (r *ItemRepository) ListActive(skip, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("is_active = ?", true).
		Offset(skip).Limit(limit).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, translate(err, "item")
	}
	return items, nil
}

func (r *ItemRepository) Save(item *models.Item) error {
	return translate(r.db.Save(item).Error, "item")
}

// Delete removes a catalogue item. Order items that reference it keep their
// snapshot and get their item_id nulled by the ON DELETE SET NULL constraint.
func (r *ItemRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Item{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "item")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("item")
	}
	return nil
}

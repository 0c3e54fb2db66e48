package migrations

import (
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_core_tables", &CreateCoreTables{})
}

// CreateCoreTables creates users, items, orders, and order_items with their
// foreign keys: deleting a user cascades to their orders and order items,
// deleting an item nulls the reference on order items that point to it.
type CreateCoreTables struct{}

func (m *CreateCoreTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	)
}

func (m *CreateCoreTables) Down(db *gorm.DB) error {
	// Children first so the FKs don't block the drops.
	return db.Migrator().DropTable("order_items", "orders", "items", "users")
}

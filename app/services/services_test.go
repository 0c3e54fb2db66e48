package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/auth"
	"github.com/shashiranjanraj/winkel/pkg/testkit"
)

// testEnv wires a fresh in-memory database with every repository, so a test
// can reach for whichever service it needs.
type testEnv struct {
	db     *gorm.DB
	users  *repositories.UserRepository
	items  *repositories.ItemRepository
	orders *repositories.OrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testkit.DB(t)
	return &testEnv{
		db:     db,
		users:  repositories.NewUserRepository(db),
		items:  repositories.NewItemRepository(db),
		orders: repositories.NewOrderRepository(db),
	}
}

func (e *testEnv) seedUser(t *testing.T, email string, admin bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("wachtwoord123")
	require.NoError(t, err)
	user := &models.User{Email: email, Password: hash, IsActive: true, IsAdmin: admin}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) seedItem(t *testing.T, name string, price string) *models.Item {
	t.Helper()
	item := &models.Item{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    10,
		IsActive: true,
	}
	require.NoError(t, e.items.Create(item))
	return item
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/pkg/apperr"
)

func validAddress() AddressInput {
	return AddressInput{
		Street:      "Stationsstraat",
		HouseNumber: "12a",
		PostalCode:  "1234 AB",
		City:        "Amsterdam",
	}
}

func TestCreateOrderComputesExactTotal(t *testing.T) {
	e := newTestEnv(t)
	svc := NewOrderService(e.orders, e.items, false)
	buyer := e.seedUser(t, "ash@winkel.nl", false)

	order, err := svc.Create(buyer.ID, OrderInput{
		Items: []OrderLineInput{
			{ProductName: "Pikachu plush", ProductPrice: decimal.New(1000, -2), Quantity: 2},
			{ProductName: "Keychain", ProductPrice: decimal.New(500, -2), Quantity: 1},
		},
		Address: validAddress(),
	})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.New(2500, -2)),
		"total = %s, want 25.00", order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Nederland", order.Country, "country defaults when omitted")
	require.Len(t, order.Items, 2)
	for _, line := range order.Items {
		assert.Equal(t, order.ID, line.OrderID)
	}

	// cent-boundary check: 0.10 * 3 must be exactly 0.30
	order, err = svc.Create(buyer.ID, OrderInput{
		Items: []OrderLineInput{
			{ProductName: "Sticker", ProductPrice: decimal.New(10, -2), Quantity: 3},
		},
		Address: validAddress(),
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.New(30, -2)),
		"total = %s, want 0.30", order.TotalAmount)
}

func TestCreateOrderPersistsAllLines(t *testing.T) {
	e := newTestEnv(t)
	svc := NewOrderService(e.orders, e.items, false)
	buyer := e.seedUser(t, "ash@winkel.nl", false)

	order, err := svc.Create(buyer.ID, OrderInput{
		Items: []OrderLineInput{
			{ProductName: "A", ProductPrice: decimal.New(100, -2), Quantity: 1},
			{ProductName: "B", ProductPrice: decimal.New(200, -2), Quantity: 2},
			{ProductName: "C", ProductPrice: decimal.New(300, -2), Quantity: 3},
		},
		Address: validAddress(),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, e.db.Model(&models.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestCreateOrderValidation(t *testing.T) {
	e := newTestEnv(t)
	svc := NewOrderService(e.orders, e.items, false)
	buyer := e.seedUser(t, "ash@winkel.nl", false)

	t.Run("empty items", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, OrderInput{Address: validAddress()})
		ve, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "items")
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, OrderInput{
			Items: []OrderLineInput{
				{ProductName: "A", ProductPrice: decimal.New(100, -2)},
			},
			Address: validAddress(),
		})
		ve, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "items.0.quantity")
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, OrderInput{
			Items: []OrderLineInput{
				{ProductName: "A", ProductPrice: decimal.New(-100, -2), Quantity: 1},
			},
			Address: validAddress(),
		})
		ve, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "items.0.product_price")
	})

	t.Run("sub-cent price", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, OrderInput{
			Items: []OrderLineInput{
				{ProductName: "A", ProductPrice: decimal.RequireFromString("9.999"), Quantity: 1},
			},
			Address: validAddress(),
		})
		ve, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "items.0.product_price")
	})

	t.Run("missing address fields", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, OrderInput{
			Items: []OrderLineInput{
				{ProductName: "A", ProductPrice: decimal.New(100, -2), Quantity: 1},
			},
		})
		ve, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "address.street")
		assert.Contains(t, ve.Fields, "address.city")
	})

	t.Run("unknown item id", func(t *testing.T) {
		_, err := svc.Create(buyer.ID, OrderInput{
			Items: []OrderLineInput{
				{ItemID: uuid.NewString(), ProductName: "A", ProductPrice: decimal.New(100, -2), Quantity: 1},
			},
			Address: validAddress(),
		})
		ve, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "items.0.item_id")
	})
}

func TestCreateOrderLinkedItemSnapshot(t *testing.T) {
	e := newTestEnv(t)
	svc := NewOrderService(e.orders, e.items, false)
	buyer := e.seedUser(t, "ash@winkel.nl", false)
	item := e.seedItem(t, "Pikachu plush", "19.99")

	order, err := svc.Create(buyer.ID, OrderInput{
		Items: []OrderLineInput{
			{ItemID: item.ID.String(), ProductName: item.Name, ProductPrice: item.Price, Quantity: 1},
		},
		Address: validAddress(),
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	require.NotNil(t, order.Items[0].ItemID)
	assert.Equal(t, item.ID, *order.Items[0].ItemID)
	assert.Equal(t, "Pikachu plush", order.Items[0].ProductName)
}

func TestCreateOrderPriceCheck(t *testing.T) {
	e := newTestEnv(t)
	buyer := e.seedUser(t, "ash@winkel.nl", false)
	item := e.seedItem(t, "Pikachu plush", "19.99")

	in := OrderInput{
		Items: []OrderLineInput{
			{ItemID: item.ID.String(), ProductName: item.Name, ProductPrice: decimal.New(100, -2), Quantity: 1},
		},
		Address: validAddress(),
	}

	// off: the caller's snapshot price is taken as-is
	relaxed := NewOrderService(e.orders, e.items, false)
	order, err := relaxed.Create(buyer.ID, in)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.New(100, -2)))

	// on: a mismatch is rejected before anything is written
	strict := NewOrderService(e.orders, e.items, true)
	_, err = strict.Create(buyer.ID, in)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "items.0.product_price")
}

func TestGetOrderOwnership(t *testing.T) {
	e := newTestEnv(t)
	svc := NewOrderService(e.orders, e.items, false)
	owner := e.seedUser(t, "ash@winkel.nl", false)
	other := e.seedUser(t, "gary@winkel.nl", false)
	admin := e.seedUser(t, "oak@winkel.nl", true)

	order, err := svc.Create(owner.ID, OrderInput{
		Items: []OrderLineInput{
			{ProductName: "A", ProductPrice: decimal.New(100, -2), Quantity: 1},
		},
		Address: validAddress(),
	})
	require.NoError(t, err)

	got, err := svc.Get(owner.ID, false, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.Get(other.ID, false, order.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Get(admin.ID, true, order.ID)
	assert.NoError(t, err, "admins may read any order")

	// a missing order is NotFound for everyone, owner or not
	_, err = svc.Get(other.ID, false, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListMineIsScopedAndNewestFirst(t *testing.T) {
	e := newTestEnv(t)
	svc := NewOrderService(e.orders, e.items, false)
	ash := e.seedUser(t, "ash@winkel.nl", false)
	gary := e.seedUser(t, "gary@winkel.nl", false)

	mkOrder := func(userID uuid.UUID, name string) *models.Order {
		order, err := svc.Create(userID, OrderInput{
			Items: []OrderLineInput{
				{ProductName: name, ProductPrice: decimal.New(100, -2), Quantity: 1},
			},
			Address: validAddress(),
		})
		require.NoError(t, err)
		return order
	}

	first := mkOrder(ash.ID, "first")
	time.Sleep(5 * time.Millisecond)
	second := mkOrder(ash.ID, "second")
	mkOrder(gary.ID, "gary's")

	mine, err := svc.ListMine(ash.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2, "another user's orders must not leak in")
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	empty, err := svc.ListMine(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

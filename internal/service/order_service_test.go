package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
)

func TestPlace_ExistingCustomer(t *testing.T) {
	env := setupEnv(t)
	env.addCustomer(t, 1)
	ctx := context.Background()

	o, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID:  "1",
		Description: "latte",
		TotalAmount: "4.5",
		ClerkID:     1,
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusIncomplete, o.Status)
	require.EqualValues(t, 1, o.CustomerID)
	require.EqualValues(t, 1, o.ClerkID)
	require.InDelta(t, 4.5, o.TotalAmount, 1e-9)
	require.Equal(t, "2024-05-01 12:30:00", o.Date)

	// 恢复流程不得有副作用：客户数不变
	count, err := env.customers.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPlace_InvalidInput(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID: "abc", Description: "latte", TotalAmount: "4.5", ClerkID: 1,
	})
	require.ErrorIs(t, err, ErrInvalidCustomerID)

	_, err = env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID: "1", Description: "latte", TotalAmount: "four", ClerkID: 1,
	})
	require.ErrorIs(t, err, ErrInvalidAmount)

	// 解析失败不触库
	orders, err := env.orders.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, orders)
	customers, err := env.customers.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, customers)
}

func TestPlace_MissingCustomer(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID: "42", Description: "latte", TotalAmount: "4.5", ClerkID: 1,
	})
	require.ErrorIs(t, err, repository.ErrCustomerMissing)
}

func TestPlaceForNewCustomer(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	o, err := env.orderSvc.PlaceForNewCustomer(ctx,
		PlaceOrderInput{CustomerID: "42", Description: "latte", TotalAmount: "4.5", ClerkID: 1},
		CustomerInput{Name: "Mei Chen", Address: "3 Oak Avenue", Phone: "555-111-2222"})
	require.NoError(t, err)
	require.EqualValues(t, 42, o.CustomerID)

	// 客户与订单各增加一条
	c, err := env.customers.GetByID(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, "Mei Chen", c.Name)
	customers, err := env.customers.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, customers)
	orders, err := env.orders.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, orders)
}

func TestPlaceForNewCustomer_MissingFields(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.orderSvc.PlaceForNewCustomer(ctx,
		PlaceOrderInput{CustomerID: "42", Description: "latte", TotalAmount: "4.5", ClerkID: 1},
		CustomerInput{Name: "", Address: "3 Oak Avenue", Phone: "555-111-2222"})
	require.Error(t, err)

	customers, err := env.customers.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, customers)
}

func TestVerifyCourier(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	id, err := env.orderSvc.VerifyCourier(ctx, "3")
	require.NoError(t, err)
	require.EqualValues(t, 3, id)

	_, err = env.orderSvc.VerifyCourier(ctx, "three")
	require.ErrorIs(t, err, ErrInvalidDeliveryID)

	// 店员不是配送员
	_, err = env.orderSvc.VerifyCourier(ctx, "1")
	require.ErrorIs(t, err, ErrCourierNotFound)

	_, err = env.orderSvc.VerifyCourier(ctx, "999")
	require.ErrorIs(t, err, ErrCourierNotFound)
}

func TestAssign(t *testing.T) {
	env := setupEnv(t)
	env.addCustomer(t, 1)
	ctx := context.Background()

	o, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID: "1", Description: "latte", TotalAmount: "4.5", ClerkID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, env.orderSvc.Assign(ctx, 3, "1"))

	var got model.Order
	require.NoError(t, env.db.First(&got, o.ID).Error)
	require.Equal(t, model.StatusAssigned, got.Status)
	require.NotNil(t, got.DeliveryID)
	require.EqualValues(t, 3, *got.DeliveryID)
}

func TestAssign_UnknownOrder(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	err := env.orderSvc.Assign(ctx, 3, "999")
	require.ErrorIs(t, err, repository.ErrOrderNotFound)

	err = env.orderSvc.Assign(ctx, 3, "one")
	require.ErrorIs(t, err, ErrInvalidOrderID)
}

func TestAssign_CourierRoleRequired(t *testing.T) {
	env := setupEnv(t)
	env.addCustomer(t, 1)
	ctx := context.Background()

	o, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID: "1", Description: "latte", TotalAmount: "4.5", ClerkID: 1,
	})
	require.NoError(t, err)

	// 经理 ID 不可指派，订单保持原状
	err = env.orderSvc.Assign(ctx, 5, "1")
	require.ErrorIs(t, err, ErrCourierNotFound)

	var got model.Order
	require.NoError(t, env.db.First(&got, o.ID).Error)
	require.Equal(t, model.StatusIncomplete, got.Status)
	require.Nil(t, got.DeliveryID)
}

func TestComplete(t *testing.T) {
	env := setupEnv(t)
	env.addCustomer(t, 1)
	ctx := context.Background()

	_, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID: "1", Description: "latte", TotalAmount: "4.5", ClerkID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, env.orderSvc.Complete(ctx, "1"))
	require.ErrorIs(t, env.orderSvc.Complete(ctx, "999"), repository.ErrOrderNotFound)
	require.ErrorIs(t, env.orderSvc.Complete(ctx, "one"), ErrInvalidOrderID)
}

// TestOrderLifecycle 店员下单 → 指派 d1 → 配送员完结的完整走向
func TestOrderLifecycle(t *testing.T) {
	env := setupEnv(t)
	env.addCustomer(t, 1)
	ctx := context.Background()

	clerk, err := env.auth.Login(ctx, "c1", "password")
	require.NoError(t, err)
	require.EqualValues(t, 1, clerk.ID)

	o, err := env.orderSvc.Place(ctx, PlaceOrderInput{
		CustomerID:  "1",
		Description: "latte",
		TotalAmount: "4.5",
		ClerkID:     clerk.ID,
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusIncomplete, o.Status)

	mine, err := env.orderSvc.IncompleteForClerk(ctx, clerk.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	courierID, err := env.orderSvc.VerifyCourier(ctx, "3")
	require.NoError(t, err)
	require.NoError(t, env.orderSvc.Assign(ctx, courierID, "1"))

	courier, err := env.auth.Login(ctx, "d1", "password")
	require.NoError(t, err)
	require.EqualValues(t, 3, courier.ID)
	require.NoError(t, env.orderSvc.Complete(ctx, "1"))

	var got model.Order
	require.NoError(t, env.db.First(&got, o.ID).Error)
	require.Equal(t, model.StatusCompleted, got.Status)
	require.EqualValues(t, 1, got.ClerkID)
	require.EqualValues(t, 3, *got.DeliveryID)
	require.InDelta(t, 4.5, got.TotalAmount, 1e-9)
}

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
	"github.com/d60-Lab/coffee-pos/pkg/database"
)

type testEnv struct {
	db        *gorm.DB
	customers repository.CustomerRepository
	employees repository.EmployeeRepository
	orders    repository.OrderRepository
	auth      AuthService
	orderSvc  OrderService
	reports   ReportService
	exportDir string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	db, err := database.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	customers := repository.NewCustomerRepository(db)
	employees := repository.NewEmployeeRepository(db)
	orders := repository.NewOrderRepository(db)
	require.NoError(t, orders.InitSchema())

	ctx := context.Background()
	for _, e := range []model.Employee{
		{Username: "c1", Password: "password", Role: model.RoleClerk},
		{Username: "c2", Password: "password", Role: model.RoleClerk},
		{Username: "d1", Password: "password", Role: model.RoleDelivery},
		{Username: "d2", Password: "password", Role: model.RoleDelivery},
		{Username: "m1", Password: "password", Role: model.RoleManager},
	} {
		e := e
		require.NoError(t, employees.Create(ctx, &e))
	}

	orderSvc := NewOrderService(orders, employees)
	// 固定时钟便于断言日期
	orderSvc.(*orderService).now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 0, 0, time.Local)
	}

	return &testEnv{
		db:        db,
		customers: customers,
		employees: employees,
		orders:    orders,
		auth:      NewAuthService(employees),
		orderSvc:  orderSvc,
		reports:   NewReportService(customers, orders, db, dir),
		exportDir: dir,
	}
}

func (e *testEnv) addCustomer(t *testing.T, id int64) {
	t.Helper()
	c := &model.Customer{ID: id, Name: "Elena Reyes", Address: "12 Maple Street, Springfield", PhoneNumber: "555-010-2030"}
	require.NoError(t, e.customers.Create(context.Background(), c))
}

package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/pkg/database"
)

// setupTestDB 每个测试使用独立的库文件，走 database.Open 以启用外键约束
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, NewOrderRepository(db).InitSchema())
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// seedStaff 写入固定名册：c1=1 c2=2 d1=3 d2=4 m1=5
func seedStaff(t *testing.T, db *gorm.DB) {
	t.Helper()
	repo := NewEmployeeRepository(db)
	for _, e := range []model.Employee{
		{Username: "c1", Password: "password", Role: model.RoleClerk},
		{Username: "c2", Password: "password", Role: model.RoleClerk},
		{Username: "d1", Password: "password", Role: model.RoleDelivery},
		{Username: "d2", Password: "password", Role: model.RoleDelivery},
		{Username: "m1", Password: "password", Role: model.RoleManager},
	} {
		e := e
		require.NoError(t, repo.Create(context.Background(), &e))
	}
}

func seedCustomer(t *testing.T, db *gorm.DB, id int64) {
	t.Helper()
	c := &model.Customer{ID: id, Name: "Elena Reyes", Address: "12 Maple Street, Springfield", PhoneNumber: "555-010-2030"}
	require.NoError(t, NewCustomerRepository(db).Create(context.Background(), c))
}

func testOrder(customerID, clerkID int64, date string, amount float64) *model.Order {
	return &model.Order{
		CustomerID:  customerID,
		ClerkID:     clerkID,
		Description: "latte",
		Date:        date,
		TotalAmount: amount,
		Status:      model.StatusIncomplete,
	}
}

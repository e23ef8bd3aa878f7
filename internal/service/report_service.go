package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/report"
	"github.com/d60-Lab/coffee-pos/internal/repository"
)

// ReportService 经理侧的只读报表与导出
type ReportService interface {
	// CustomerProfile 按 ID 查询客户档案
	CustomerProfile(ctx context.Context, customerID string) (*model.Customer, error)

	// OrdersOnDay 按日期前缀（YYYY-MM-DD）统计
	OrdersOnDay(ctx context.Context, day string) (*repository.DayTotals, error)

	// Pending 未完结订单（Incomplete ∪ Assigned）
	Pending(ctx context.Context) ([]*model.Order, error)

	// TotalsPerClerk 按店员分组的订单数与金额合计
	TotalsPerClerk(ctx context.Context) ([]*repository.ClerkTotals, error)

	// Export 全表导出 CSV，返回文件路径与数据行数
	Export(ctx context.Context, table, name string) (string, int, error)
}

type reportService struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	db        *gorm.DB
	exportDir string
}

func NewReportService(customers repository.CustomerRepository, orders repository.OrderRepository, db *gorm.DB, exportDir string) ReportService {
	if exportDir == "" {
		exportDir = "."
	}
	return &reportService{customers: customers, orders: orders, db: db, exportDir: exportDir}
}

func (s *reportService) CustomerProfile(ctx context.Context, customerID string) (*model.Customer, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(customerID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCustomerID, customerID)
	}
	return s.customers.GetByID(ctx, id)
}

func (s *reportService) OrdersOnDay(ctx context.Context, day string) (*repository.DayTotals, error) {
	return s.orders.TotalsOnDay(ctx, strings.TrimSpace(day))
}

func (s *reportService) Pending(ctx context.Context) ([]*model.Order, error) {
	return s.orders.ListPending(ctx)
}

func (s *reportService) TotalsPerClerk(ctx context.Context) ([]*repository.ClerkTotals, error) {
	return s.orders.TotalsPerClerk(ctx)
}

func (s *reportService) Export(ctx context.Context, table, name string) (string, int, error) {
	path := filepath.Join(s.exportDir, strings.TrimSpace(name)+".csv")
	n, err := report.ExportCSV(ctx, s.db, table, path)
	if err != nil {
		return "", 0, err
	}
	return path, n, nil
}

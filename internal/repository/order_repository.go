package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/coffee-pos/internal/model"
)

// DayTotals 单日订单统计；无订单时 Total 为 NULL
type DayTotals struct {
	Count int64
	Total sql.NullFloat64
}

// ClerkTotals 按店员分组的订单统计
type ClerkTotals struct {
	ClerkID int64
	Orders  int64
	Total   float64
}

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Create 写入订单；客户外键未命中返回 ErrCustomerMissing，此时无任何残留写入
	Create(ctx context.Context, o *model.Order) error

	// CreateWithCustomer 补录客户后的重试路径：同一事务内先写客户（显式 ID）再写订单，
	// 任一步失败整体回滚
	CreateWithCustomer(ctx context.Context, o *model.Order, c *model.Customer) error

	// AssignDelivery 设置配送员并置为 Assigned；订单不存在返回 ErrOrderNotFound
	AssignDelivery(ctx context.Context, orderID, deliveryID int64) error

	// MarkCompleted 置为 Completed，不校验先前状态；订单不存在返回 ErrOrderNotFound
	MarkCompleted(ctx context.Context, orderID int64) error

	// ListIncompleteByClerk 指定店员名下 Incomplete 的订单
	ListIncompleteByClerk(ctx context.Context, clerkID int64) ([]*model.Order, error)

	// ListPending Incomplete 与 Assigned 的并集
	ListPending(ctx context.Context) ([]*model.Order, error)

	// TotalsOnDay 按日期前缀（YYYY-MM-DD）统计订单数与金额合计
	TotalsOnDay(ctx context.Context, day string) (*DayTotals, error)

	// TotalsPerClerk 按店员分组统计
	TotalsPerClerk(ctx context.Context) ([]*ClerkTotals, error)

	Count(ctx context.Context) (int64, error)

	// InitSchema 建表（幂等），父表在前以满足外键依赖
	InitSchema() error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	// 跳过关联级联，外键未命中必须以约束错误浮出而不是顺手建客户
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCustomerMissing
		}
		return err
	}
	return nil
}

func (r *orderRepository) CreateWithCustomer(ctx context.Context, o *model.Order, c *model.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrCustomerExists
			}
			return err
		}
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrCustomerMissing
			}
			return err
		}
		return nil
	})
}

func (r *orderRepository) AssignDelivery(ctx context.Context, orderID, deliveryID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":      model.StatusAssigned,
			"delivery_id": deliveryID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) MarkCompleted(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", model.StatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) ListIncompleteByClerk(ctx context.Context, clerkID int64) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("status = ? AND clerk_id = ?", model.StatusIncomplete, clerkID).
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListPending(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{model.StatusIncomplete, model.StatusAssigned}).
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) TotalsOnDay(ctx context.Context, day string) (*DayTotals, error) {
	var t DayTotals
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("COUNT(id) AS count, SUM(total_amount) AS total").
		Where("date LIKE ?", day+"%").
		Scan(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *orderRepository) TotalsPerClerk(ctx context.Context) ([]*ClerkTotals, error) {
	var totals []*ClerkTotals
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("clerk_id, COUNT(id) AS orders, SUM(total_amount) AS total").
		Group("clerk_id").
		Order("clerk_id").
		Scan(&totals).Error
	return totals, err
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) InitSchema() error {
	if err := r.db.AutoMigrate(&model.Customer{}, &model.Employee{}, &model.Order{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

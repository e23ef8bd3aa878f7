package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/coffee-pos/internal/model"
)

// CustomerRepository 客户仓储接口
type CustomerRepository interface {
	// Create 新建客户；ID 为零值时由库自增分配，显式 ID 冲突返回 ErrCustomerExists
	Create(ctx context.Context, c *model.Customer) error

	// GetByID 按 ID 查询客户
	GetByID(ctx context.Context, id int64) (*model.Customer, error)

	// Count 统计客户数量
	Count(ctx context.Context) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrCustomerExists
		}
		return err
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&count).Error
	return count, err
}

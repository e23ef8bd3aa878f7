package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/coffee-pos/internal/model"
)

// EmployeeRepository 员工仓储接口，写入仅发生在播种阶段
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error

	// FindByCredentials 用户名密码精确匹配，未命中返回 ErrEmployeeNotFound
	FindByCredentials(ctx context.Context, username, password string) (*model.Employee, error)

	// GetByRole 按 ID 查询且要求角色匹配
	GetByRole(ctx context.Context, id int64, role string) (*model.Employee, error)

	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepository) FindByCredentials(ctx context.Context, username, password string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) GetByRole(ctx context.Context, id int64, role string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, role).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).Count(&count).Error
	return count, err
}

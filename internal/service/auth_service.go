package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService 登录认证
type AuthService interface {
	// Login 用户名密码精确匹配；不匹配返回 ErrInvalidCredentials，调用方据此终止进程
	Login(ctx context.Context, username, password string) (*model.Employee, error)
}

type authService struct {
	employees repository.EmployeeRepository
}

func NewAuthService(employees repository.EmployeeRepository) AuthService {
	return &authService{employees: employees}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.Employee, error) {
	e, err := s.employees.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return e, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
)

// 输入校验哨兵错误：解析失败的操作不触库
var (
	ErrInvalidCustomerID = errors.New("customer id must be a number")
	ErrInvalidAmount     = errors.New("total amount must be a number")
	ErrInvalidOrderID    = errors.New("order id must be a number")
	ErrInvalidDeliveryID = errors.New("delivery id must be a number")
	ErrCourierNotFound   = errors.New("delivery employee does not exist")
)

// PlaceOrderInput 下单输入；客户 ID 与金额保留原始文本，由服务层解析
type PlaceOrderInput struct {
	CustomerID  string
	Description string `validate:"required"`
	TotalAmount string
	ClerkID     int64
}

// CustomerInput 外键未命中时补录的客户资料
type CustomerInput struct {
	Name    string `validate:"required"`
	Address string `validate:"required"`
	Phone   string `validate:"required"`
}

// OrderService 订单操作
type OrderService interface {
	// Place 下单，状态固定为 Incomplete；客户不存在返回 repository.ErrCustomerMissing
	Place(ctx context.Context, in PlaceOrderInput) (*model.Order, error)

	// PlaceForNewCustomer 一次性恢复流程：以订单携带的客户 ID 建档后重试下单，
	// 重试再失败直接上浮
	PlaceForNewCustomer(ctx context.Context, in PlaceOrderInput, c CustomerInput) (*model.Order, error)

	// VerifyCourier 解析配送员 ID 并校验其角色
	VerifyCourier(ctx context.Context, deliveryID string) (int64, error)

	// Assign 指派配送员并置为 Assigned
	Assign(ctx context.Context, deliveryID int64, orderID string) error

	// Complete 置为 Completed；不校验先前状态
	Complete(ctx context.Context, orderID string) error

	// IncompleteForClerk 指定店员名下未完成的订单
	IncompleteForClerk(ctx context.Context, clerkID int64) ([]*model.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	employees repository.EmployeeRepository
	validate  *validator.Validate
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, employees repository.EmployeeRepository) OrderService {
	return &orderService{
		orders:    orders,
		employees: employees,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// buildOrder 解析并校验输入，生成待写入的订单行
func (s *orderService) buildOrder(in PlaceOrderInput) (*model.Order, error) {
	customerID, err := strconv.ParseInt(strings.TrimSpace(in.CustomerID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCustomerID, in.CustomerID)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.TotalAmount), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, in.TotalAmount)
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	return &model.Order{
		CustomerID:  customerID,
		ClerkID:     in.ClerkID,
		Description: in.Description,
		Date:        s.now().Format(model.DateLayout),
		TotalAmount: amount,
		Status:      model.StatusIncomplete,
	}, nil
}

func (s *orderService) Place(ctx context.Context, in PlaceOrderInput) (*model.Order, error) {
	o, err := s.buildOrder(in)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) PlaceForNewCustomer(ctx context.Context, in PlaceOrderInput, ci CustomerInput) (*model.Order, error) {
	o, err := s.buildOrder(in)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(ci); err != nil {
		return nil, err
	}
	c := &model.Customer{
		ID:          o.CustomerID,
		Name:        ci.Name,
		Address:     ci.Address,
		PhoneNumber: ci.Phone,
	}
	if err := s.orders.CreateWithCustomer(ctx, o, c); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) VerifyCourier(ctx context.Context, deliveryID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(deliveryID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDeliveryID, deliveryID)
	}
	if _, err := s.employees.GetByRole(ctx, id, model.RoleDelivery); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return 0, fmt.Errorf("%w: ID %d", ErrCourierNotFound, id)
		}
		return 0, err
	}
	return id, nil
}

func (s *orderService) Assign(ctx context.Context, deliveryID int64, orderID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(orderID), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOrderID, orderID)
	}
	if _, err := s.employees.GetByRole(ctx, deliveryID, model.RoleDelivery); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return fmt.Errorf("%w: ID %d", ErrCourierNotFound, deliveryID)
		}
		return err
	}
	return s.orders.AssignDelivery(ctx, id, deliveryID)
}

func (s *orderService) Complete(ctx context.Context, orderID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(orderID), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOrderID, orderID)
	}
	return s.orders.MarkCompleted(ctx, id)
}

func (s *orderService) IncompleteForClerk(ctx context.Context, clerkID int64) ([]*model.Order, error) {
	return s.orders.ListIncompleteByClerk(ctx, clerkID)
}

// Package cli 登录后的交互会话：认证、角色菜单循环与结果渲染。
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
	"github.com/d60-Lab/coffee-pos/internal/service"
	"github.com/d60-Lab/coffee-pos/pkg/logger"
)

// Session 单个用户的交互会话
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	auth      service.AuthService
	orders    service.OrderService
	reports   service.ReportService
	user      *model.Employee
	sessionID string
	eof       bool
}

type menuItem struct {
	label string
	run   func(context.Context) error
}

func NewSession(in io.Reader, out io.Writer, auth service.AuthService, orders service.OrderService, reports service.ReportService) *Session {
	return &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		auth:    auth,
		orders:  orders,
		reports: reports,
	}
}

// Run 先登录再进入角色菜单循环。登录失败直接返回错误（调用方以非零码退出），
// 循环只在输入流结束或不可恢复的存储错误时退出。
func (s *Session) Run(ctx context.Context) error {
	username := s.prompt("Enter your username: ")
	password := s.prompt("Enter your password: ")

	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Fprintln(s.out, "Invalid credentials. Please try again.")
		}
		return err
	}
	s.user = user
	s.sessionID = uuid.New().String()
	logger.Info("login",
		zap.String("session", s.sessionID),
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	items := s.menu()
	if len(items) == 0 {
		return fmt.Errorf("unknown role %q", user.Role)
	}
	return s.loop(ctx, items)
}

func (s *Session) loop(ctx context.Context, items []menuItem) error {
	for {
		for i, it := range items {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, it.label)
		}
		choice := s.prompt("Enter your choice: ")
		if s.eof {
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}
		if err := items[n-1].run(ctx); err != nil {
			return err
		}
		if s.eof {
			return nil
		}
	}
}

// menu 每个角色的操作集合是固定的，不做逐项权限判断
func (s *Session) menu() []menuItem {
	switch s.user.Role {
	case model.RoleClerk:
		return []menuItem{
			{"Place an order", s.placeOrder},
			{"Assign order to delivery", s.assignDelivery},
			{"Check incomplete orders", s.checkIncomplete},
		}
	case model.RoleDelivery:
		return []menuItem{
			{"Mark order as completed", s.markCompleted},
		}
	case model.RoleManager:
		return []menuItem{
			{"Customer profile", s.customerProfile},
			{"Number of orders in a specific day", s.ordersOnDay},
			{"Pending orders", s.pendingOrders},
			{"Total number of orders per clerk", s.totalsPerClerk},
			{"Export data to CSV", s.exportCSV},
		}
	}
	return nil
}

func (s *Session) prompt(label string) string {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// report 已知的输入或业务错误打印后继续循环，其余错误上浮终止会话
func (s *Session) report(err error) error {
	var verrs validator.ValidationErrors
	recoverable := errors.As(err, &verrs) ||
		errors.Is(err, service.ErrInvalidCustomerID) ||
		errors.Is(err, service.ErrInvalidAmount) ||
		errors.Is(err, service.ErrInvalidOrderID) ||
		errors.Is(err, service.ErrInvalidDeliveryID) ||
		errors.Is(err, service.ErrCourierNotFound) ||
		errors.Is(err, repository.ErrOrderNotFound) ||
		errors.Is(err, repository.ErrCustomerNotFound) ||
		errors.Is(err, repository.ErrCustomerExists)
	if !recoverable {
		return err
	}
	fmt.Fprintln(s.out, capitalize(err.Error()))
	logger.Warn("operation rejected",
		zap.String("session", s.sessionID),
		zap.Error(err))
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

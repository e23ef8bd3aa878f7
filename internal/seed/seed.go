// Package seed 在首次启动时写入演示数据：固定员工名册加随机客户与订单。
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
	"github.com/d60-Lab/coffee-pos/pkg/logger"
)

// 固定员工名册：两名店员、两名配送员、一名经理
var roster = []model.Employee{
	{Username: "c1", Password: "password", Role: model.RoleClerk},
	{Username: "c2", Password: "password", Role: model.RoleClerk},
	{Username: "d1", Password: "password", Role: model.RoleDelivery},
	{Username: "d2", Password: "password", Role: model.RoleDelivery},
	{Username: "m1", Password: "password", Role: model.RoleManager},
}

var firstNames = []string{
	"Elena", "Marcus", "Priya", "Diego", "Mei",
	"Omar", "Lucia", "Kenji", "Amara", "Rafael",
}

var lastNames = []string{
	"Reyes", "Chen", "Sharma", "Tanaka", "Mendoza",
	"Okafor", "Novak", "Kim", "Silva", "Haddad",
}

var streets = []string{
	"Maple Street", "Oak Avenue", "Cedar Lane",
	"Elm Drive", "Birch Road", "Willow Court",
}

var cities = []string{"Springfield", "Riverton", "Lakewood", "Fairview", "Brookside"}

var drinks = []string{
	"latte", "espresso", "cappuccino", "flat white",
	"mocha", "cold brew", "americano", "macchiato",
}

// NewRNG 构造随机源；seed 为 0 时取当前时间
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Seeder 演示数据生成器
type Seeder struct {
	employees repository.EmployeeRepository
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	rng       *rand.Rand
}

func New(employees repository.EmployeeRepository, customers repository.CustomerRepository, orders repository.OrderRepository, rng *rand.Rand) *Seeder {
	return &Seeder{employees: employees, customers: customers, orders: orders, rng: rng}
}

// Run 写入名册员工、customers 个随机客户与 orders 笔随机订单。
// 只允许在库文件尚不存在的那次启动调用，重复调用会翻倍演示数据。
func (s *Seeder) Run(ctx context.Context, customers, orders int) error {
	for i := range roster {
		e := roster[i]
		if err := s.employees.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed employee %s: %w", e.Username, err)
		}
	}

	for i := 0; i < customers; i++ {
		c := &model.Customer{
			Name:        s.pick(firstNames) + " " + s.pick(lastNames),
			Address:     fmt.Sprintf("%d %s, %s", 1+s.rng.Intn(999), s.pick(streets), s.pick(cities)),
			PhoneNumber: fmt.Sprintf("555-%03d-%04d", s.rng.Intn(1000), s.rng.Intn(10000)),
		}
		if err := s.customers.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer: %w", err)
		}
	}

	if customers > 0 {
		for i := 0; i < orders; i++ {
			o := &model.Order{
				CustomerID:  int64(1 + s.rng.Intn(customers)),
				ClerkID:     int64(1 + s.rng.Intn(2)),
				Description: s.pick(drinks),
				Date:        s.randomDate(),
				TotalAmount: float64(10 + s.rng.Intn(91)),
				Status:      model.StatusIncomplete,
			}
			if err := s.orders.Create(ctx, o); err != nil {
				return fmt.Errorf("seed order: %w", err)
			}
		}
	}

	logger.Info("seeded demo data",
		zap.Int("employees", len(roster)),
		zap.Int("customers", customers),
		zap.Int("orders", orders))
	return nil
}

func (s *Seeder) pick(items []string) string {
	return items[s.rng.Intn(len(items))]
}

// randomDate 本十年内的随机时刻，文本格式与下单路径一致
func (s *Seeder) randomDate() string {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	days := int(time.Since(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	d := start.AddDate(0, 0, s.rng.Intn(days))
	d = d.Add(time.Duration(s.rng.Intn(24*60*60)) * time.Second)
	return d.Format(model.DateLayout)
}

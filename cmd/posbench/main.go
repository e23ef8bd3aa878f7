package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/d60-Lab/coffee-pos/internal/model"
	"github.com/d60-Lab/coffee-pos/internal/repository"
	"github.com/d60-Lab/coffee-pos/internal/service"
	"github.com/d60-Lab/coffee-pos/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// 对下单与报表路径的简单吞吐测量，规模由环境变量 N 控制
func main() {
	dir := must(os.MkdirTemp("", "posbench-*"))
	defer os.RemoveAll(dir)

	db := must(database.Open(filepath.Join(dir, "bench.db")))
	defer database.Close(db)

	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	if err := orderRepo.InitSchema(); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, e := range []model.Employee{
		{Username: "c1", Password: "p", Role: model.RoleClerk},
		{Username: "c2", Password: "p", Role: model.RoleClerk},
		{Username: "d1", Password: "p", Role: model.RoleDelivery},
	} {
		e := e
		if err := employeeRepo.Create(ctx, &e); err != nil {
			panic(err)
		}
	}
	for i := 0; i < 3; i++ {
		c := model.Customer{Name: fmt.Sprintf("bench customer %d", i+1), Address: "1 Bench St", PhoneNumber: "555-000-0000"}
		if err := customerRepo.Create(ctx, &c); err != nil {
			panic(err)
		}
	}

	N := 1000
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			N = n
		}
	}

	orderSvc := service.NewOrderService(orderRepo, employeeRepo)

	start := time.Now()
	for i := 0; i < N; i++ {
		_, err := orderSvc.Place(ctx, service.PlaceOrderInput{
			CustomerID:  strconv.Itoa(1 + i%3),
			Description: "bench order",
			TotalAmount: "12.5",
			ClerkID:     int64(1 + i%2),
		})
		if err != nil {
			panic(err)
		}
	}
	elapsed := time.Since(start)
	fmt.Printf("place: %d ops in %v (%.0f ops/s)\n", N, elapsed, float64(N)/elapsed.Seconds())

	start = time.Now()
	for i := 0; i < N; i++ {
		if _, err := orderRepo.TotalsPerClerk(ctx); err != nil {
			panic(err)
		}
	}
	elapsed = time.Since(start)
	fmt.Printf("totals-per-clerk: %d ops in %v (%.0f ops/s)\n", N, elapsed, float64(N)/elapsed.Seconds())

	start = time.Now()
	for i := 0; i < N; i++ {
		if _, err := orderRepo.ListPending(ctx); err != nil {
			panic(err)
		}
	}
	elapsed = time.Since(start)
	fmt.Printf("pending: %d ops in %v (%.0f ops/s)\n", N, elapsed, float64(N)/elapsed.Seconds())
}

package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/d60-Lab/coffee-pos/config"
	"github.com/d60-Lab/coffee-pos/internal/cli"
	"github.com/d60-Lab/coffee-pos/internal/repository"
	"github.com/d60-Lab/coffee-pos/internal/seed"
	"github.com/d60-Lab/coffee-pos/internal/service"
	"github.com/d60-Lab/coffee-pos/pkg/database"
	"github.com/d60-Lab/coffee-pos/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func main() {
	if err := run(); err != nil {
		logger.Error("session terminated", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		return err
	}

	// 首次启动的判定必须在打开连接之前，打开连接本身会创建库文件
	firstLaunch := database.FirstLaunch(cfg)

	db := must(database.InitDB(cfg))
	defer database.Close(db)

	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	if err := orderRepo.InitSchema(); err != nil {
		return err
	}

	ctx := context.Background()
	if firstLaunch {
		seeder := seed.New(employeeRepo, customerRepo, orderRepo, seed.NewRNG(cfg.Seed.Seed))
		if err := seeder.Run(ctx, cfg.Seed.Customers, cfg.Seed.Orders); err != nil {
			return err
		}
	}

	authSvc := service.NewAuthService(employeeRepo)
	orderSvc := service.NewOrderService(orderRepo, employeeRepo)
	reportSvc := service.NewReportService(customerRepo, orderRepo, db, cfg.Export.Dir)

	session := cli.NewSession(os.Stdin, os.Stdout, authSvc, orderSvc, reportSvc)
	return session.Run(ctx)
}

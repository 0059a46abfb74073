package main

import (
	"context"

	"opsconsole/internal/config"
	"opsconsole/internal/domain/model"
	"opsconsole/internal/handler"
	"opsconsole/internal/infra/db"
	infraRepo "opsconsole/internal/infra/repository"
	"opsconsole/internal/infra/storage"
	"opsconsole/internal/server"
	"opsconsole/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; deployed environments inject real variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var log *zap.Logger
	if cfg.GoEnv == "prod" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("store connection failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.OrderItem{},
		&model.Job{},
		&model.JobCompletion{},
		&model.OrderPayment{},
		&model.TeamServiceFee{},
		&model.TeamServiceFeeJob{},
		&model.Setting{},
		&model.DocumentSequence{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		log.Fatal("object store init failed", zap.Error(err))
	}

	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	itemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	jobRepo := infraRepo.NewJobGormRepository(gormDB)
	linkRepo := infraRepo.NewServiceFeeLinkGormRepository(gormDB)
	completionRepo := infraRepo.NewJobCompletionGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	docSeqRepo := infraRepo.NewDocumentSequenceGormRepository(gormDB)
	settingRepo := infraRepo.NewSettingGormRepository(gormDB)

	orderUC := usecase.NewOrderUsecase(
		orderRepo, itemRepo, jobRepo, linkRepo, completionRepo,
		paymentRepo, docSeqRepo, store, log,
	)
	jobUC := usecase.NewJobUsecase(jobRepo, completionRepo, store, log)
	settingUC := usecase.NewSettingUsecase(settingRepo, log)

	h := server.Handlers{
		Order:   handler.NewOrderHandler(orderUC),
		Job:     handler.NewJobHandler(jobUC),
		Setting: handler.NewSettingHandler(settingUC),
	}

	log.Info("starting api", zap.String("port", cfg.Port), zap.String("env", cfg.GoEnv))
	if err := server.Start(cfg, h); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/infra/db"
	infraRepo "backoffice/internal/infra/repository"
	"backoffice/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	//.envは無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("backoffice failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	//スキーマ作成
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	logger.Info("schema installed", zap.String("driver", cfg.DBDriver), zap.Int("tables", len(db.Models())))

	uc := newUsecases(cfg, gormDB, logger)

	//補充が必要な在庫を出力
	low, err := uc.catalog.ListNeedingRestock(ctx)
	if err != nil {
		return err
	}
	for _, s := range low {
		logger.Warn("restock needed",
			zap.Int64("product_id", s.ProductID),
			zap.String("product", s.String()),
			zap.Int64("quantity", s.Quantity),
		)
	}
	logger.Info("restock report", zap.Int("count", len(low)))

	return nil
}

type usecases struct {
	catalog    *usecase.CatalogUsecase
	promotions *usecase.PromotionUsecase
	customers  *usecase.CustomerUsecase
	orders     *usecase.OrderUsecase
	carts      *usecase.CartUsecase
	reviews    *usecase.ReviewUsecase
}

// DI
func newUsecases(cfg config.Config, gormDB *gorm.DB, logger *zap.Logger) usecases {
	tx := infraRepo.NewTxManagerGorm(gormDB)
	products := infraRepo.NewProductGormRepository(gormDB)

	return usecases{
		catalog: usecase.NewCatalogUsecase(
			infraRepo.NewCategoryGormRepository(gormDB),
			products,
			infraRepo.NewStockGormRepository(gormDB),
			logger,
		),
		promotions: usecase.NewPromotionUsecase(
			infraRepo.NewPromotionGormRepository(gormDB),
			usecase.SystemClock{},
			logger,
		),
		customers: usecase.NewCustomerUsecase(
			tx,
			infraRepo.NewUserGormRepository(gormDB),
			infraRepo.NewCustomerGormRepository(gormDB),
			usecase.NewBcryptPasswordHasher(cfg.BcryptCost),
			logger,
		),
		orders: usecase.NewOrderUsecase(
			tx,
			infraRepo.NewOrderGormRepository(gormDB),
			infraRepo.NewOrderItemGormRepository(gormDB),
			infraRepo.NewPaymentGormRepository(gormDB),
			logger,
		),
		carts: usecase.NewCartUsecase(
			infraRepo.NewCartGormRepository(gormDB),
			infraRepo.NewCartItemGormRepository(gormDB),
			products,
			logger,
		),
		reviews: usecase.NewReviewUsecase(infraRepo.NewReviewGormRepository(gormDB), logger),
	}
}

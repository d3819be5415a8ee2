package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"backoffice/internal/domain/model"
	infradb "backoffice/internal/infra/db"
	infrarepo "backoffice/internal/infra/repository"
	repo "backoffice/internal/repository"
	"backoffice/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// =====================
// Mocks
// =====================

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Category)
	return list, args.Error(1)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepoMock) CountProducts(ctx context.Context, id int64, activeOnly bool) (int64, error) {
	args := m.Called(ctx, id, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]model.Product)
	return list, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) Upsert(ctx context.Context, productID int64, quantity int64) (model.Stock, error) {
	args := m.Called(ctx, productID, quantity)
	s, _ := args.Get(0).(model.Stock)
	return s, args.Error(1)
}

func (m *StockRepoMock) FindByProductID(ctx context.Context, productID int64) (model.Stock, error) {
	args := m.Called(ctx, productID)
	s, _ := args.Get(0).(model.Stock)
	return s, args.Error(1)
}

func (m *StockRepoMock) ListBelow(ctx context.Context, threshold int64) ([]model.Stock, error) {
	args := m.Called(ctx, threshold)
	list, _ := args.Get(0).([]model.Stock)
	return list, args.Error(1)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

func (m *ReviewRepoMock) Update(ctx context.Context, r model.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ReviewRepoMock) FindByID(ctx context.Context, id int64) (model.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(model.Review)
	return r, args.Error(1)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	list, _ := args.Get(0).([]model.Review)
	return list, args.Error(1)
}

func (m *ReviewRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ReviewRepoMock) Stats(ctx context.Context, productID int64) (repo.RatingStats, error) {
	args := m.Called(ctx, productID)
	s, _ := args.Get(0).(repo.RatingStats)
	return s, args.Error(1)
}

type PromotionRepoMock struct{ mock.Mock }

func (m *PromotionRepoMock) Create(ctx context.Context, p model.Promotion) (model.Promotion, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Promotion)
	return created, args.Error(1)
}

func (m *PromotionRepoMock) Update(ctx context.Context, p model.Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PromotionRepoMock) FindByID(ctx context.Context, id int64) (model.Promotion, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Promotion)
	return p, args.Error(1)
}

func (m *PromotionRepoMock) List(ctx context.Context) ([]model.Promotion, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Promotion)
	return list, args.Error(1)
}

func (m *PromotionRepoMock) ListActiveAt(ctx context.Context, t time.Time) ([]model.Promotion, error) {
	args := m.Called(ctx, t)
	list, _ := args.Get(0).([]model.Promotion)
	return list, args.Error(1)
}

func (m *PromotionRepoMock) AttachProducts(ctx context.Context, id int64, productIDs []int64) error {
	args := m.Called(ctx, id, productIDs)
	return args.Error(0)
}

func (m *PromotionRepoMock) DetachProducts(ctx context.Context, id int64, productIDs []int64) error {
	args := m.Called(ctx, id, productIDs)
	return args.Error(0)
}

func (m *PromotionRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// =====================
// SQLite
// =====================

type app struct {
	db         *gorm.DB
	catalog    *usecase.CatalogUsecase
	promotions *usecase.PromotionUsecase
	customers  *usecase.CustomerUsecase
	orders     *usecase.OrderUsecase
	carts      *usecase.CartUsecase
	reviews    *usecase.ReviewUsecase
}

func newApp(t *testing.T) *app {
	t.Helper()

	gdb, err := infradb.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, infradb.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	logger := zap.NewNop()
	products := infrarepo.NewProductGormRepository(gdb)

	return &app{
		db: gdb,
		catalog: usecase.NewCatalogUsecase(
			infrarepo.NewCategoryGormRepository(gdb),
			products,
			infrarepo.NewStockGormRepository(gdb),
			logger,
		),
		promotions: usecase.NewPromotionUsecase(infrarepo.NewPromotionGormRepository(gdb), usecase.SystemClock{}, logger),
		customers: usecase.NewCustomerUsecase(
			infrarepo.NewTxManagerGorm(gdb),
			infrarepo.NewUserGormRepository(gdb),
			infrarepo.NewCustomerGormRepository(gdb),
			usecase.NewBcryptPasswordHasher(bcrypt.MinCost),
			logger,
		),
		orders: usecase.NewOrderUsecase(
			infrarepo.NewTxManagerGorm(gdb),
			infrarepo.NewOrderGormRepository(gdb),
			infrarepo.NewOrderItemGormRepository(gdb),
			infrarepo.NewPaymentGormRepository(gdb),
			logger,
		),
		carts: usecase.NewCartUsecase(
			infrarepo.NewCartGormRepository(gdb),
			infrarepo.NewCartItemGormRepository(gdb),
			products,
			logger,
		),
		reviews: usecase.NewReviewUsecase(infrarepo.NewReviewGormRepository(gdb), logger),
	}
}

func (a *app) registerCustomer(t *testing.T, email string) model.Customer {
	t.Helper()

	c, err := a.customers.RegisterCustomer(context.Background(), usecase.RegisterCustomerInput{
		FirstName:  "Ana",
		LastName:   "Souza",
		Email:      email,
		Password:   "correct horse battery",
		Address:    "Rua das Flores, 10",
		City:       "Recife",
		State:      "PE",
		PostalCode: "50000-000",
	})
	require.NoError(t, err)
	return c
}

func (a *app) createProduct(t *testing.T, name string, price string) model.Product {
	t.Helper()

	p, err := a.catalog.CreateProduct(context.Background(), usecase.ProductInput{
		Name:  name,
		Price: dec(price),
		Stock: 10,
	})
	require.NoError(t, err)
	return p
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T { return &v }

func rowCount(t *testing.T, gdb *gorm.DB, m any, where string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, gdb.Model(m).Where(where, args...).Count(&n).Error)
	return n
}

// AppErrorのコード（と項目）を確認する
func assertAppError(t *testing.T, err error, code usecase.ErrorCode, field string) {
	t.Helper()

	require.Error(t, err)
	ae, ok := usecase.AsAppError(err)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	assert.Equal(t, code, ae.Code)
	if field != "" {
		assert.Equal(t, field, ae.Field)
	}
}

var errDB = errors.New("connection reset")

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

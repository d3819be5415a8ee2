package usecase

import (
	"context"
	"strings"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogUsecase はカテゴリ・商品・在庫の管理。
type CatalogUsecase struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	stocks     repo.StockRepository
	logger     *zap.Logger
}

// DI
func NewCatalogUsecase(
	categories repo.CategoryRepository,
	products repo.ProductRepository,
	stocks repo.StockRepository,
	logger *zap.Logger,
) *CatalogUsecase {
	return &CatalogUsecase{
		categories: categories,
		products:   products,
		stocks:     stocks,
		logger:     orNop(logger),
	}
}

// カテゴリと商品数
type CategorySummary struct {
	Category       model.Category `json:"category"`
	TotalProducts  int64          `json:"total_products"`
	ActiveProducts int64          `json:"active_products"`
}

// 商品の作成・更新の入力
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *int64
	// nilなら作成時はtrue、更新時は現状維持
	IsActive *bool
	Stock    int64
}

// =====================
// Category
// =====================

func (u *CatalogUsecase) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	c := model.Category{Name: strings.TrimSpace(name)}
	if err := validator.Struct(c); err != nil {
		return model.Category{}, validationError(err)
	}

	created, err := u.categories.Create(ctx, c)
	if err != nil {
		return model.Category{}, repoError(u.logger, "create category", err)
	}
	return created, nil
}

func (u *CatalogUsecase) RenameCategory(ctx context.Context, id int64, name string) (model.Category, error) {
	c := model.Category{ID: id, Name: strings.TrimSpace(name)}
	if err := validator.Struct(c); err != nil {
		return model.Category{}, validationError(err)
	}

	if err := u.categories.Update(ctx, c); err != nil {
		return model.Category{}, repoError(u.logger, "rename category", err, zap.Int64("category_id", id))
	}
	return c, nil
}

// カテゴリ取得（商品数付き）
func (u *CatalogUsecase) GetCategory(ctx context.Context, id int64) (CategorySummary, error) {
	c, err := u.categories.FindByID(ctx, id)
	if err != nil {
		return CategorySummary{}, repoError(u.logger, "get category", err, zap.Int64("category_id", id))
	}

	total, err := u.categories.CountProducts(ctx, id, false)
	if err != nil {
		return CategorySummary{}, repoError(u.logger, "count products", err, zap.Int64("category_id", id))
	}
	active, err := u.categories.CountProducts(ctx, id, true)
	if err != nil {
		return CategorySummary{}, repoError(u.logger, "count active products", err, zap.Int64("category_id", id))
	}

	return CategorySummary{Category: c, TotalProducts: total, ActiveProducts: active}, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	list, err := u.categories.List(ctx)
	if err != nil {
		return []model.Category{}, repoError(u.logger, "list categories", err)
	}
	return list, nil
}

// 商品はカテゴリなしで残る
func (u *CatalogUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if err := u.categories.Delete(ctx, id); err != nil {
		return repoError(u.logger, "delete category", err, zap.Int64("category_id", id))
	}
	return nil
}

// =====================
// Product
// =====================

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	p := model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		IsActive:    true,
		Stock:       in.Stock,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	if err := u.checkProduct(ctx, p); err != nil {
		return model.Product{}, err
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, repoError(u.logger, "create product", err)
	}
	return created, nil
}

// 全項目を置き換える（IsActiveだけnilなら維持）
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (model.Product, error) {
	cur, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, repoError(u.logger, "find product", err, zap.Int64("product_id", id))
	}

	p := model.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		IsActive:    cur.IsActive,
		Stock:       in.Stock,
		CreatedAt:   cur.CreatedAt,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	if err := u.checkProduct(ctx, p); err != nil {
		return model.Product{}, err
	}

	if err := u.products.Update(ctx, p); err != nil {
		return model.Product{}, repoError(u.logger, "update product", err, zap.Int64("product_id", id))
	}
	return u.GetProduct(ctx, id)
}

// カテゴリと在庫行付き
func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, repoError(u.logger, "get product", err, zap.Int64("product_id", id))
	}
	return p, nil
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	list, err := u.products.List(ctx, f)
	if err != nil {
		return []model.Product{}, repoError(u.logger, "list products", err)
	}
	return list, nil
}

// 明細・レビュー・在庫行も消える
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if err := u.products.Delete(ctx, id); err != nil {
		return repoError(u.logger, "delete product", err, zap.Int64("product_id", id))
	}
	return nil
}

func (u *CatalogUsecase) checkProduct(ctx context.Context, p model.Product) error {
	if err := validator.Struct(p); err != nil {
		return validationError(err)
	}
	if p.CategoryID == nil {
		return nil
	}
	if _, err := u.categories.FindByID(ctx, *p.CategoryID); err != nil {
		return referenceError(u.logger, "find category", "category_id", err, zap.Int64("category_id", *p.CategoryID))
	}
	return nil
}

// =====================
// Stock
// =====================

// 在庫行の数量を設定（無ければ作る）。Product.Stockとは別管理。
func (u *CatalogUsecase) SetStock(ctx context.Context, productID int64, quantity int64) (model.Stock, error) {
	if err := validator.Var("quantity", quantity, "gte=0"); err != nil {
		return model.Stock{}, validationError(err)
	}

	s, err := u.stocks.Upsert(ctx, productID, quantity)
	if err != nil {
		return model.Stock{}, withField(repoError(u.logger, "set stock", err, zap.Int64("product_id", productID)), CodeReference, "product_id")
	}
	return s, nil
}

func (u *CatalogUsecase) GetStock(ctx context.Context, productID int64) (model.Stock, error) {
	s, err := u.stocks.FindByProductID(ctx, productID)
	if err != nil {
		return model.Stock{}, repoError(u.logger, "get stock", err, zap.Int64("product_id", productID))
	}
	return s, nil
}

// 補充が必要な在庫（数量が少ない順）
func (u *CatalogUsecase) ListNeedingRestock(ctx context.Context) ([]model.Stock, error) {
	list, err := u.stocks.ListBelow(ctx, model.RestockThreshold)
	if err != nil {
		return []model.Stock{}, repoError(u.logger, "list restock", err)
	}
	return list, nil
}

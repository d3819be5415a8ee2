package usecase

import (
	"context"
	"errors"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartUsecase は顧客カートの業務ロジックです。
// Repositoryは Cart と CartItem を分離して受け取ります。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	logger       *zap.Logger
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	logger *zap.Logger,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		logger:       orNop(logger),
	}
}

// カートと集計値
type CartSummary struct {
	Cart           model.Cart      `json:"cart"`
	ItemCount      int             `json:"item_count"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formatted_total"`
}

type AddCartItemInput struct {
	ProductID int64
	// 0なら1
	Quantity int64
}

// GetCart は顧客のカートを明細付きで返す。
func (u *CartUsecase) GetCart(ctx context.Context, customerID int64) (CartSummary, error) {
	cart, err := u.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return CartSummary{}, repoError(u.logger, "get cart", err, zap.Int64("customer_id", customerID))
	}
	return summarize(cart), nil
}

// AddCartItem は商品の現在価格で明細を作る（同一商品は追加不可）。
func (u *CartUsecase) AddCartItem(ctx context.Context, customerID int64, in AddCartItemInput) (CartSummary, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if err := validator.Var("quantity", in.Quantity, "gte=1"); err != nil {
		return CartSummary{}, validationError(err)
	}

	cart, err := u.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return CartSummary{}, repoError(u.logger, "find cart", err, zap.Int64("customer_id", customerID))
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		return CartSummary{}, referenceError(u.logger, "find product", "product_id", err, zap.Int64("product_id", in.ProductID))
	}

	item := model.CartItem{
		CartID:    cart.ID,
		ProductID: p.ID,
		Quantity:  in.Quantity,
		UnitPrice: p.Price,
	}
	item.Subtotal = item.ComputedSubtotal()

	if _, err := u.cartItemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return CartSummary{}, &AppError{Code: CodeConflict, Field: "product_id", Message: "product already in cart", Err: err}
		}
		return CartSummary{}, repoError(u.logger, "create cart item", err, zap.Int64("cart_id", cart.ID))
	}

	return u.GetCart(ctx, customerID)
}

// 数量変更（小計は追加時の単価で再計算）
func (u *CartUsecase) UpdateCartItemQuantity(ctx context.Context, cartItemID int64, quantity int64) (model.CartItem, error) {
	if err := validator.Var("quantity", quantity, "gte=1"); err != nil {
		return model.CartItem{}, validationError(err)
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err != nil {
		return model.CartItem{}, repoError(u.logger, "find cart item", err, zap.Int64("cart_item_id", cartItemID))
	}

	item.Quantity = quantity
	item.Subtotal = item.ComputedSubtotal()

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, item.Quantity, item.Subtotal); err != nil {
		return model.CartItem{}, repoError(u.logger, "update cart item", err, zap.Int64("cart_item_id", cartItemID))
	}
	return item, nil
}

// 明細削除
func (u *CartUsecase) RemoveCartItem(ctx context.Context, cartItemID int64) error {
	if err := u.cartItemRepo.Delete(ctx, cartItemID); err != nil {
		return repoError(u.logger, "delete cart item", err, zap.Int64("cart_item_id", cartItemID))
	}
	return nil
}

// 明細を全削除（カート自体は残る）
func (u *CartUsecase) ClearCart(ctx context.Context, customerID int64) (CartSummary, error) {
	cart, err := u.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return CartSummary{}, repoError(u.logger, "find cart", err, zap.Int64("customer_id", customerID))
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartSummary{}, repoError(u.logger, "clear cart", err, zap.Int64("cart_id", cart.ID))
	}
	return u.GetCart(ctx, customerID)
}

func summarize(cart model.Cart) CartSummary {
	return CartSummary{
		Cart:           cart,
		ItemCount:      cart.ItemCount(),
		Total:          cart.Total(),
		FormattedTotal: cart.FormattedTotal(),
	}
}

package usecase

import (
	"context"
	"strings"
	"time"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PromotionUsecase struct {
	promotions repo.PromotionRepository
	clock      Clock
	logger     *zap.Logger
}

// DI
func NewPromotionUsecase(promotions repo.PromotionRepository, clock Clock, logger *zap.Logger) *PromotionUsecase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &PromotionUsecase{promotions: promotions, clock: clock, logger: orNop(logger)}
}

type PromotionInput struct {
	Name            string
	Description     *string
	DiscountPercent decimal.Decimal
	StartsAt        time.Time
	EndsAt          time.Time
	// nilなら作成時はtrue、更新時は現状維持
	IsActive *bool
}

func (u *PromotionUsecase) CreatePromotion(ctx context.Context, in PromotionInput) (model.Promotion, error) {
	p := buildPromotion(in, true)
	if err := validator.Struct(p); err != nil {
		return model.Promotion{}, validationError(err)
	}

	created, err := u.promotions.Create(ctx, p)
	if err != nil {
		return model.Promotion{}, repoError(u.logger, "create promotion", err)
	}
	return created, nil
}

func (u *PromotionUsecase) UpdatePromotion(ctx context.Context, id int64, in PromotionInput) (model.Promotion, error) {
	cur, err := u.promotions.FindByID(ctx, id)
	if err != nil {
		return model.Promotion{}, repoError(u.logger, "find promotion", err, zap.Int64("promotion_id", id))
	}

	p := buildPromotion(in, cur.IsActive)
	p.ID = id
	if err := validator.Struct(p); err != nil {
		return model.Promotion{}, validationError(err)
	}

	if err := u.promotions.Update(ctx, p); err != nil {
		return model.Promotion{}, repoError(u.logger, "update promotion", err, zap.Int64("promotion_id", id))
	}
	return u.GetPromotion(ctx, id)
}

// 対象商品付き
func (u *PromotionUsecase) GetPromotion(ctx context.Context, id int64) (model.Promotion, error) {
	p, err := u.promotions.FindByID(ctx, id)
	if err != nil {
		return model.Promotion{}, repoError(u.logger, "get promotion", err, zap.Int64("promotion_id", id))
	}
	return p, nil
}

func (u *PromotionUsecase) ListPromotions(ctx context.Context) ([]model.Promotion, error) {
	list, err := u.promotions.List(ctx)
	if err != nil {
		return []model.Promotion{}, repoError(u.logger, "list promotions", err)
	}
	return list, nil
}

// 時刻tに有効なもの（zeroなら現在時刻）
func (u *PromotionUsecase) ListActiveAt(ctx context.Context, t time.Time) ([]model.Promotion, error) {
	if t.IsZero() {
		t = u.clock.Now()
	}
	list, err := u.promotions.ListActiveAt(ctx, t)
	if err != nil {
		return []model.Promotion{}, repoError(u.logger, "list active promotions", err)
	}
	return list, nil
}

func (u *PromotionUsecase) AttachProducts(ctx context.Context, id int64, productIDs []int64) (model.Promotion, error) {
	if err := u.promotions.AttachProducts(ctx, id, productIDs); err != nil {
		err = repoError(u.logger, "attach products", err, zap.Int64("promotion_id", id))
		return model.Promotion{}, withField(err, CodeReference, "product_ids")
	}
	return u.GetPromotion(ctx, id)
}

// 紐付けだけ外す（商品は残る）
func (u *PromotionUsecase) DetachProducts(ctx context.Context, id int64, productIDs []int64) (model.Promotion, error) {
	if err := u.promotions.DetachProducts(ctx, id, productIDs); err != nil {
		err = repoError(u.logger, "detach products", err, zap.Int64("promotion_id", id))
		return model.Promotion{}, withField(err, CodeReference, "product_ids")
	}
	return u.GetPromotion(ctx, id)
}

func (u *PromotionUsecase) DeletePromotion(ctx context.Context, id int64) error {
	if err := u.promotions.Delete(ctx, id); err != nil {
		return repoError(u.logger, "delete promotion", err, zap.Int64("promotion_id", id))
	}
	return nil
}

func buildPromotion(in PromotionInput, active bool) model.Promotion {
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return model.Promotion{
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		DiscountPercent: in.DiscountPercent,
		StartsAt:        in.StartsAt.UTC(),
		EndsAt:          in.EndsAt.UTC(),
		IsActive:        active,
	}
}

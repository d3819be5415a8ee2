package usecase

import (
	"context"
	"errors"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"go.uber.org/zap"
)

type ReviewUsecase struct {
	reviews repo.ReviewRepository
	logger  *zap.Logger
}

// DI
func NewReviewUsecase(reviews repo.ReviewRepository, logger *zap.Logger) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, logger: orNop(logger)}
}

type CreateReviewInput struct {
	ProductID  int64
	CustomerID int64
	Rating     int
	Comment    *string
}

// 平均評価（レビューが無ければ0件）
type RatingSummary struct {
	ProductID int64   `json:"product_id"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

// 1商品1顧客につき1件
func (u *ReviewUsecase) CreateReview(ctx context.Context, in CreateReviewInput) (model.Review, error) {
	r := model.Review{
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := validator.Struct(r); err != nil {
		return model.Review{}, validationError(err)
	}

	created, err := u.reviews.Create(ctx, r)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Review{}, &AppError{Code: CodeConflict, Field: "customer_id", Message: "customer already reviewed this product", Err: err}
		}
		return model.Review{}, repoError(u.logger, "create review", err,
			zap.Int64("product_id", in.ProductID), zap.Int64("customer_id", in.CustomerID))
	}
	return created, nil
}

// 評価とコメントを変更
func (u *ReviewUsecase) UpdateReview(ctx context.Context, id int64, rating int, comment *string) (model.Review, error) {
	if err := validator.Var("rating", rating, "min=1,max=5"); err != nil {
		return model.Review{}, validationError(err)
	}

	if err := u.reviews.Update(ctx, model.Review{ID: id, Rating: rating, Comment: comment}); err != nil {
		return model.Review{}, repoError(u.logger, "update review", err, zap.Int64("review_id", id))
	}

	r, err := u.reviews.FindByID(ctx, id)
	if err != nil {
		return model.Review{}, repoError(u.logger, "get review", err, zap.Int64("review_id", id))
	}
	return r, nil
}

// 新しい順
func (u *ReviewUsecase) ListReviewsByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	list, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, repoError(u.logger, "list reviews", err, zap.Int64("product_id", productID))
	}
	return list, nil
}

func (u *ReviewUsecase) DeleteReview(ctx context.Context, id int64) error {
	if err := u.reviews.Delete(ctx, id); err != nil {
		return repoError(u.logger, "delete review", err, zap.Int64("review_id", id))
	}
	return nil
}

func (u *ReviewUsecase) AverageRating(ctx context.Context, productID int64) (RatingSummary, error) {
	s, err := u.reviews.Stats(ctx, productID)
	if err != nil {
		return RatingSummary{}, repoError(u.logger, "rating stats", err, zap.Int64("product_id", productID))
	}
	return RatingSummary{ProductID: productID, Average: s.Average, Count: s.Count}, nil
}

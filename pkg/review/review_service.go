package review

import (
	"context"
	"errors"
	"strings"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/entities"
	"gorm.io/gorm"
)

type (
	ReviewService interface {
		GetAllReviews(ctx context.Context) ([]domain.ReviewRow, error)
		GetReview(ctx context.Context, reviewID int) ([]domain.ReviewRow, error)
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, userTag string) (domain.CreateReviewResponse, error)
		GetProfileReviews(ctx context.Context, userTag string) ([]domain.ProfileReview, error)
		GetRestaurantTypes(ctx context.Context) ([]string, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{reviewRepository: reviewRepository}
}

func trimTruncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

func (s *reviewService) GetAllReviews(ctx context.Context) ([]domain.ReviewRow, error) {
	return s.reviewRepository.GetReviews(ctx)
}

func (s *reviewService) GetReview(ctx context.Context, reviewID int) ([]domain.ReviewRow, error) {
	return s.reviewRepository.GetReviewByID(ctx, reviewID)
}

// CreateReview inserts the review and its restaurant-type junction row in
// one transaction. The type lookup happens after the review insert, so an
// unknown type rolls the already-written review back too.
func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, userTag string) (domain.CreateReviewResponse, error) {
	if strings.TrimSpace(req.RestName) == "" ||
		strings.TrimSpace(req.RestType) == "" ||
		strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.StateCode) == "" {
		return domain.CreateReviewResponse{}, domain.ErrMissingRequiredFields
	}

	oRating, errO := req.ORating.Float64()
	taste, errT := req.Taste.Float64()
	experience, errE := req.Experience.Float64()
	if errO != nil || errT != nil || errE != nil {
		return domain.CreateReviewResponse{}, domain.ErrInvalidFacetRange
	}
	for _, v := range []float64{oRating, taste, experience} {
		if v <= 0 || v > 10 {
			return domain.CreateReviewResponse{}, domain.ErrInvalidFacetRange
		}
	}

	price, err := req.Price.Int64()
	if err != nil || price <= 0 || price > 4 {
		return domain.CreateReviewResponse{}, domain.ErrInvalidPriceRange
	}

	sophSubmitted := false
	review := &entities.Review{
		RestName:      trimTruncate(req.RestName, 255),
		ORating:       oRating,
		Price:         int(price),
		Taste:         taste,
		Experience:    experience,
		Description:   trimTruncate(req.Description, 1000),
		City:          trimTruncate(req.City, 100),
		StateCode:     trimTruncate(req.StateCode, 2),
		SophSubmitted: &sophSubmitted,
		UserEncrypted: userTag,
	}

	err = s.reviewRepository.Transaction(ctx, func(repo ReviewRepository) error {
		if err := repo.CreateReview(ctx, review); err != nil {
			return err
		}

		restType, err := repo.GetRestaurantTypeByName(ctx, strings.TrimSpace(req.RestType))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInvalidRestaurantType
			}
			return err
		}

		return repo.AddTypeRef(ctx, &entities.RestTypeReviewRef{
			RestTypeID: restType.RestTypeID,
			ReviewID:   review.ReviewID,
		})
	})
	if err != nil {
		return domain.CreateReviewResponse{}, err
	}

	return domain.CreateReviewResponse{ReviewID: review.ReviewID}, nil
}

func (s *reviewService) GetProfileReviews(ctx context.Context, userTag string) ([]domain.ProfileReview, error) {
	return s.reviewRepository.GetReviewsByUser(ctx, userTag)
}

func (s *reviewService) GetRestaurantTypes(ctx context.Context) ([]string, error) {
	return s.reviewRepository.GetRestaurantTypes(ctx)
}

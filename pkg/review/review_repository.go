package review

import (
	"context"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/entities"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		// Transaction runs fn against a repository bound to a single
		// database transaction; any error rolls the whole unit back.
		Transaction(ctx context.Context, fn func(repo ReviewRepository) error) error

		CreateReview(ctx context.Context, review *entities.Review) error
		GetRestaurantTypeByName(ctx context.Context, name string) (*entities.RestaurantType, error)
		AddTypeRef(ctx context.Context, ref *entities.RestTypeReviewRef) error

		GetReviews(ctx context.Context) ([]domain.ReviewRow, error)
		GetReviewByID(ctx context.Context, reviewID int) ([]domain.ReviewRow, error)
		GetReviewsByUser(ctx context.Context, userTag string) ([]domain.ProfileReview, error)
		GetRestaurantTypes(ctx context.Context) ([]string, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}

	// scan target for the review/type join
	reviewTypeRow struct {
		ReviewID      int     `gorm:"column:review_id"`
		RestName      string  `gorm:"column:rest_name"`
		ORating       float64 `gorm:"column:o_rating"`
		Price         int     `gorm:"column:price"`
		Taste         float64 `gorm:"column:taste"`
		Experience    float64 `gorm:"column:experience"`
		Description   string  `gorm:"column:description"`
		City          string  `gorm:"column:city"`
		StateCode     string  `gorm:"column:state_code"`
		SophSubmitted *bool   `gorm:"column:soph_submitted"`
		UserEncrypted string  `gorm:"column:user_encrypted"`
		RestType      *string `gorm:"column:rest_type"`
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Transaction(ctx context.Context, fn func(repo ReviewRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&reviewRepository{db: tx})
	})
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetRestaurantTypeByName(ctx context.Context, name string) (*entities.RestaurantType, error) {
	var restType entities.RestaurantType
	if err := r.db.WithContext(ctx).Where("rest_type = ?", name).First(&restType).Error; err != nil {
		return nil, err
	}
	return &restType, nil
}

func (r *reviewRepository) AddTypeRef(ctx context.Context, ref *entities.RestTypeReviewRef) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *reviewRepository) joinedReviews(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, rest_types.rest_type AS rest_type").
		Joins("LEFT JOIN rest_type_review_ref ON reviews.review_id = rest_type_review_ref.review_id").
		Joins("LEFT JOIN rest_types ON rest_type_review_ref.rest_type_id = rest_types.rest_type_id")
}

func toReviewRows(rows []reviewTypeRow) []domain.ReviewRow {
	out := make([]domain.ReviewRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ReviewRow{
			ReviewID:      row.ReviewID,
			RestName:      row.RestName,
			ORating:       row.ORating,
			Price:         row.Price,
			Taste:         row.Taste,
			Experience:    row.Experience,
			Description:   row.Description,
			City:          row.City,
			StateCode:     row.StateCode,
			SophSubmitted: row.SophSubmitted,
			UserEncrypted: row.UserEncrypted,
			RestType:      row.RestType,
		})
	}
	return out
}

func (r *reviewRepository) GetReviews(ctx context.Context) ([]domain.ReviewRow, error) {
	var rows []reviewTypeRow
	if err := r.joinedReviews(ctx).
		Order("reviews.review_id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toReviewRows(rows), nil
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, reviewID int) ([]domain.ReviewRow, error) {
	var rows []reviewTypeRow
	if err := r.joinedReviews(ctx).
		Where("reviews.review_id = ?", reviewID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toReviewRows(rows), nil
}

func (r *reviewRepository) GetReviewsByUser(ctx context.Context, userTag string) ([]domain.ProfileReview, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("user_encrypted = ?", userTag).
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ProfileReview, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, domain.ProfileReview{
			RestName:      review.RestName,
			ORating:       review.ORating,
			UserEncrypted: review.UserEncrypted,
			ReviewID:      review.ReviewID,
		})
	}
	return out, nil
}

func (r *reviewRepository) GetRestaurantTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RestaurantType{}).
		Order("rest_type asc").
		Pluck("rest_type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

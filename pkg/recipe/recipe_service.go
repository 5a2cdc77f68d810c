package recipe

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/entities"
	"github.com/Smadden00/sophsAppAPI/internal/utils/storage"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetAllRecipes(ctx context.Context) ([]domain.RecipeRow, error)
		GetRecipeDetail(ctx context.Context, recipeID int) (*domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userTag string) (domain.CreateRecipeResponse, error)
		AddComment(ctx context.Context, recipeID int, req domain.AddCommentRequest, userTag string) error
		SubmitRating(ctx context.Context, recipeID int, req domain.SubmitRatingRequest, userTag string) error
		GetUsersRating(ctx context.Context, recipeID int, userTag string) (domain.UsersRatingResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
		assetBaseURL     string
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3, assetBaseURL string) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
		assetBaseURL:     assetBaseURL,
	}
}

// trimTruncate trims whitespace, then silently truncates to max characters.
// Over-long strings are a lenient write, not a rejection.
func trimTruncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]domain.RecipeRow, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RecipeRow, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, domain.RecipeRow{
			RecipeID:      r.RecipeID,
			RecipeName:    r.RecipeName,
			PrepTimeInMin: r.PrepTimeInMin,
			Meal:          r.Meal,
			RecImgURL:     r.RecImgURL,
			SophSubmitted: r.SophSubmitted,
		})
	}
	return rows, nil
}

// GetRecipeDetail returns nil (no error) when the recipe does not exist;
// the handler maps that to an empty body.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID int) (*domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	instructions, err := s.recipeRepository.GetInstructions(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.recipeRepository.GetIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	comments, err := s.recipeRepository.GetComments(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	averageRating, err := s.recipeRepository.AverageRating(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return &domain.RecipeDetail{
		RecipeID:      recipe.RecipeID,
		RecipeName:    recipe.RecipeName,
		UserEncrypted: recipe.UserEncrypted,
		PrepTimeInMin: recipe.PrepTimeInMin,
		Meal:          recipe.Meal,
		RecImgURL:     recipe.RecImgURL,
		SophSubmitted: recipe.SophSubmitted,
		Ingredients:   ingredients,
		Instructions:  instructions,
		Comments:      comments,
		AverageRating: averageRating,
	}, nil
}

func (s *recipeService) validateCreateRecipe(req domain.CreateRecipeRequest) (int, error) {
	if strings.TrimSpace(req.RecipeName) == "" {
		return 0, domain.NewValidationError("recipe_name", "Missing required fields")
	}
	if strings.TrimSpace(req.Meal) == "" {
		return 0, domain.NewValidationError("meal", "Missing required fields")
	}
	if len(req.Ingredients) == 0 {
		return 0, domain.NewValidationError("ingredients", "Missing required fields")
	}
	if len(req.Instructions) == 0 {
		return 0, domain.NewValidationError("instructions", "Missing required fields")
	}
	for _, ingredient := range req.Ingredients {
		if strings.TrimSpace(ingredient) == "" {
			return 0, domain.NewValidationError("ingredients", "ingredients must not contain empty entries")
		}
	}
	for _, instruction := range req.Instructions {
		if strings.TrimSpace(instruction) == "" {
			return 0, domain.NewValidationError("instructions", "instructions must not contain empty entries")
		}
	}

	prepTime, err := strconv.Atoi(req.PrepTimeInMin.String())
	if err != nil || prepTime < 0 {
		return 0, domain.NewValidationError("prep_time_in_min", "Invalid prep_time_in_min value")
	}

	if req.Image == nil && req.RecImgURL == "" {
		return 0, domain.ErrMissingImageUpload
	}
	if req.Image == nil && s.assetBaseURL != "" && !strings.HasPrefix(req.RecImgURL, s.assetBaseURL) {
		return 0, domain.ErrImageHostRejected
	}

	return prepTime, nil
}

// CreateRecipe writes the recipe row, its ordered instructions, its
// ingredients and the image URL as one all-or-nothing unit. An image
// upload failure rolls everything back.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userTag string) (domain.CreateRecipeResponse, error) {
	prepTime, err := s.validateCreateRecipe(req)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	sophSubmitted := false
	recipe := &entities.Recipe{
		RecipeName:    trimTruncate(req.RecipeName, 255),
		UserEncrypted: userTag,
		PrepTimeInMin: prepTime,
		Meal:          trimTruncate(req.Meal, 50),
		SophSubmitted: &sophSubmitted,
	}

	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if err := repo.CreateRecipe(ctx, recipe); err != nil {
			return err
		}

		for i, instruction := range req.Instructions {
			if err := repo.AddInstruction(ctx, &entities.RecipeInstruction{
				RecipeID:         recipe.RecipeID,
				InstructionOrder: i,
				Instruction:      trimTruncate(instruction, 1000),
			}); err != nil {
				return err
			}
		}

		for _, ingredient := range req.Ingredients {
			if err := repo.AddIngredient(ctx, &entities.RecipeIngredient{
				RecipeID:   recipe.RecipeID,
				Ingredient: trimTruncate(ingredient, 255),
			}); err != nil {
				return err
			}
		}

		imageURL := req.RecImgURL
		if req.Image != nil {
			objectKey, err := s.s3.UploadFile(strconv.Itoa(recipe.RecipeID), req.Image, "recipes", storage.AllowImage...)
			if err != nil {
				return err
			}
			imageURL = s.s3.GetPublicLinkKey(objectKey)
		}

		return repo.SetRecipeImageURL(ctx, recipe.RecipeID, imageURL)
	})
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	return domain.CreateRecipeResponse{RecipeID: recipe.RecipeID}, nil
}

func (s *recipeService) AddComment(ctx context.Context, recipeID int, req domain.AddCommentRequest, userTag string) error {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return domain.ErrCommentRequired
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidRecipeID
		}
		return err
	}

	return s.recipeRepository.AddComment(ctx, &entities.RecipeComment{
		RecipeID:      recipeID,
		Comment:       trimTruncate(comment, 150),
		UserEncrypted: userTag,
	})
}

func (s *recipeService) SubmitRating(ctx context.Context, recipeID int, req domain.SubmitRatingRequest, userTag string) error {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.ErrInvalidRating
	}

	return s.recipeRepository.UpsertRating(ctx, &entities.RecipeRating{
		RecipeID:      recipeID,
		UserEncrypted: userTag,
		Rating:        req.Rating,
	})
}

func (s *recipeService) GetUsersRating(ctx context.Context, recipeID int, userTag string) (domain.UsersRatingResponse, error) {
	rating, err := s.recipeRepository.GetUsersRating(ctx, recipeID, userTag)
	if err != nil {
		return domain.UsersRatingResponse{}, err
	}
	return domain.UsersRatingResponse{UsersRating: rating}, nil
}

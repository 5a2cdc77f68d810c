package recipe

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Smadden00/sophsAppAPI/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		// Transaction runs fn against a repository bound to a single
		// database transaction; any error rolls the whole unit back.
		Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error

		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		SetRecipeImageURL(ctx context.Context, recipeID int, imageURL string) error
		AddInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error
		AddIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error

		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, recipeID int) (*entities.Recipe, error)
		GetInstructions(ctx context.Context, recipeID int) ([]string, error)
		GetIngredients(ctx context.Context, recipeID int) ([]string, error)
		GetComments(ctx context.Context, recipeID int) ([]string, error)

		AddComment(ctx context.Context, comment *entities.RecipeComment) error
		UpsertRating(ctx context.Context, rating *entities.RecipeRating) error
		GetUsersRating(ctx context.Context, recipeID int, userTag string) (int, error)
		AverageRating(ctx context.Context, recipeID int) (*float64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) SetRecipeImageURL(ctx context.Context, recipeID int, imageURL string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("recipe_id = ?", recipeID).
		Update("rec_img_url", imageURL).Error
}

func (r *recipeRepository) AddInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error {
	return r.db.WithContext(ctx).Create(instruction).Error
}

func (r *recipeRepository) AddIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, recipeID int) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetInstructions(ctx context.Context, recipeID int) ([]string, error) {
	var instructions []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeInstruction{}).
		Where("recipe_id = ?", recipeID).
		Order("instruction_order asc").
		Pluck("instruction", &instructions).Error; err != nil {
		return nil, err
	}
	return instructions, nil
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID int) ([]string, error) {
	var ingredients []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ?", recipeID).
		Pluck("ingredient", &ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) GetComments(ctx context.Context, recipeID int) ([]string, error) {
	var comments []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Where("recipe_id = ?", recipeID).
		Pluck("comment", &comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *recipeRepository) AddComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// UpsertRating leans on the (recipe_id, user_encrypted) unique constraint:
// a concurrent duplicate resolves at the storage layer, last writer wins.
func (r *recipeRepository) UpsertRating(ctx context.Context, rating *entities.RecipeRating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_encrypted"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating"}),
		}).
		Create(rating).Error
}

func (r *recipeRepository) GetUsersRating(ctx context.Context, recipeID int, userTag string) (int, error) {
	var rating entities.RecipeRating
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_encrypted = ?", recipeID, userTag).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// absence is a valid default, not a failure
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rating.Rating, nil
}

func (r *recipeRepository) AverageRating(ctx context.Context, recipeID int) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.WithContext(ctx).
		Raw("SELECT AVG(rating)::numeric(3,1) FROM recipe_ratings WHERE recipe_id = ?", recipeID).
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateRecipe = "Recipe created successfully"
	MessageSuccessAddComment   = "Comment added successfully"
	MessageSuccessSubmitRating = "Rating submitted successfully"

	MessageFailedGetRecipes   = "There was an error and we could not complete your get all recipes request"
	MessageFailedGetRecipe    = "There was an error while fetching the recipe and we could not complete your request"
	MessageFailedCreateRecipe = "Failed to create recipe"
	MessageFailedAddComment   = "There was an error while sending the comment"
	MessageFailedSubmitRating = "There was an error while submitting the rating"
	MessageFailedGetRating    = "There was an error while fetching users rating"

	ErrInvalidRecipeID    = errors.New("Invalid recipe ID")
	ErrCommentRequired    = errors.New("Comment is required")
	ErrInvalidRating      = errors.New("Rating must be a number between 1 and 5")
	ErrMissingImageUpload = errors.New("Missing image file upload")
	ErrImageHostRejected  = errors.New("rec_img_url must point at the recipe image host")
)

type (
	// CreateRecipeRequest mirrors the JSON carried in the "data" form field
	// of the multipart create request. Exactly one of Image (a direct file
	// upload) or RecImgURL (a client-direct pre-upload) must be present.
	CreateRecipeRequest struct {
		RecipeName    string      `json:"recipe_name"`
		Ingredients   []string    `json:"ingredients"`
		PrepTimeInMin json.Number `json:"prep_time_in_min"`
		Meal          string      `json:"meal"`
		Instructions  []string    `json:"instructions"`
		RecImgURL     string      `json:"rec_img_url,omitempty"`

		Image *multipart.FileHeader `json:"-"`
	}

	CreateRecipeResponse struct {
		RecipeID int `json:"recipe_id"`
	}

	RecipeRow struct {
		RecipeID      int     `json:"recipe_id"`
		RecipeName    string  `json:"recipe_name"`
		PrepTimeInMin int     `json:"prep_time_in_min"`
		Meal          string  `json:"meal"`
		RecImgURL     *string `json:"rec_img_url"`
		SophSubmitted *bool   `json:"soph_submitted"`
	}

	RecipeDetail struct {
		RecipeID      int      `json:"recipe_id"`
		RecipeName    string   `json:"recipe_name"`
		UserEncrypted string   `json:"user_encrypted"`
		PrepTimeInMin int      `json:"prep_time_in_min"`
		Meal          string   `json:"meal"`
		RecImgURL     *string  `json:"rec_img_url"`
		SophSubmitted *bool    `json:"soph_submitted"`
		Ingredients   []string `json:"ingredients"`
		Instructions  []string `json:"instructions"`
		Comments      []string `json:"comments"`
		AverageRating *float64 `json:"averageRating"`
	}

	AddCommentRequest struct {
		Comment string `json:"comment" validate:"required"`
	}

	SubmitRatingRequest struct {
		Rating int `json:"rating" validate:"required,min=1,max=5"`
	}

	UsersRatingResponse struct {
		UsersRating int `json:"usersRating"`
	}
)

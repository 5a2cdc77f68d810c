package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageSuccessCreateReview = "Review created successfully"

	MessageFailedGetReviews   = "There was an error and we could not complete your get all reviews request"
	MessageFailedGetReview    = "There was an error while fetching the review and we could not complete your request"
	MessageFailedCreateReview = "Failed to create review"
	MessageFailedGetRestTypes = "There was an error while fetching restaurant types and we could not complete your request"

	ErrInvalidReviewID       = errors.New("Invalid review ID")
	ErrMissingRequiredFields = errors.New("Missing required fields")
	ErrInvalidFacetRange     = errors.New("overall rating, taste, and experience fields must be numbers between 1-10")
	ErrInvalidPriceRange     = errors.New("price field must be a number between 1-4")
	ErrInvalidRestaurantType = errors.New("Invalid restaurant type")
)

type (
	CreateReviewRequest struct {
		RestName    string      `json:"rest_name"`
		RestType    string      `json:"rest_type"`
		ORating     json.Number `json:"o_rating"`
		Price       json.Number `json:"price"`
		Taste       json.Number `json:"taste"`
		Experience  json.Number `json:"experience"`
		Description string      `json:"description"`
		City        string      `json:"city"`
		StateCode   string      `json:"state_code"`
	}

	CreateReviewResponse struct {
		ReviewID int `json:"review_id"`
	}

	// ReviewRow carries the joined restaurant type; nil when no junction
	// row exists.
	ReviewRow struct {
		ReviewID      int     `json:"review_id"`
		RestName      string  `json:"rest_name"`
		ORating       float64 `json:"o_rating"`
		Price         int     `json:"price"`
		Taste         float64 `json:"taste"`
		Experience    float64 `json:"experience"`
		Description   string  `json:"description"`
		City          string  `json:"city"`
		StateCode     string  `json:"state_code"`
		SophSubmitted *bool   `json:"soph_submitted"`
		UserEncrypted string  `json:"user_encrypted"`
		RestType      *string `json:"rest_type"`
	}

	ProfileReview struct {
		RestName      string  `json:"rest_name"`
		ORating       float64 `json:"o_rating"`
		UserEncrypted string  `json:"user_encrypted"`
		ReviewID      int     `json:"review_id"`
	}
)

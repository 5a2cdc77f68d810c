package handlers

import (
	"encoding/json"
	"errors"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/internal/api/presenters"
	"github.com/Smadden00/sophsAppAPI/pkg/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		SubmitRating(c *fiber.Ctx) error
		GetUsersRating(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func recipeIDParam(c *fiber.Ctx) (int, error) {
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID <= 0 {
		return 0, domain.ErrInvalidRecipeID
	}
	return recipeID, nil
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	rows, err := h.recipeService.GetAllRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": rows})
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	detail, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipe, err)
	}

	// an unknown id is an empty body, not an error
	if detail == nil {
		return presenters.SuccessResponse(c, fiber.StatusOK, []domain.RecipeDetail{})
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, []domain.RecipeDetail{*detail})
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	data := c.FormValue("data")
	if data == "" {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, "Missing required form field: data")
	}

	req := new(domain.CreateRecipeRequest)
	if err := json.Unmarshal([]byte(data), req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, "Invalid JSON in form field: data")
	}

	// the image arrives as the first file of the multipart form, under any
	// field name the frontend chooses
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, files := range form.File {
			if len(files) > 0 {
				req.Image = files[0]
				break
			}
		}
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userTag)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr),
			errors.Is(err, domain.ErrMissingImageUpload),
			errors.Is(err, domain.ErrImageHostRejected):
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe, err)
		}
	}

	return presenters.CreatedResponse(c, domain.MessageSuccessCreateRecipe, fiber.Map{"recipe_id": res.RecipeID})
}

func (h *recipeHandler) AddComment(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	req := new(domain.AddCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrCommentRequired.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrCommentRequired.Error())
	}

	if err := h.recipeService.AddComment(c.Context(), recipeID, *req, userTag); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentRequired), errors.Is(err, domain.ErrInvalidRecipeID):
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddComment, err)
		}
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessAddComment)
}

func (h *recipeHandler) SubmitRating(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	req := new(domain.SubmitRatingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrInvalidRating.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrInvalidRating.Error())
	}

	if err := h.recipeService.SubmitRating(c.Context(), recipeID, *req, userTag); err != nil {
		if errors.Is(err, domain.ErrInvalidRating) {
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitRating, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessSubmitRating)
}

func (h *recipeHandler) GetUsersRating(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	recipeID, err := recipeIDParam(c)
	if err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.recipeService.GetUsersRating(c.Context(), recipeID, userTag)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRating, err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

package handlers

import (
	"errors"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/internal/api/presenters"
	"github.com/Smadden00/sophsAppAPI/pkg/review"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		GetAllReviews(c *fiber.Ctx) error
		GetReview(c *fiber.Ctx) error
		CreateReview(c *fiber.Ctx) error
		GetProfileReviews(c *fiber.Ctx) error
		GetRestaurantTypes(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
	}
)

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandler{reviewService: reviewService}
}

func (h *reviewHandler) GetAllReviews(c *fiber.Ctx) error {
	rows, err := h.reviewService.GetAllReviews(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"rows": rows})
}

func (h *reviewHandler) GetReview(c *fiber.Ctx) error {
	reviewID, err := c.ParamsInt("id")
	if err != nil || reviewID <= 0 {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrInvalidReviewID.Error())
	}

	rows, err := h.reviewService.GetReview(c.Context(), reviewID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReview, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, rows)
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	req := new(domain.CreateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if _, err := h.reviewService.CreateReview(c.Context(), *req, userTag); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingRequiredFields),
			errors.Is(err, domain.ErrInvalidFacetRange),
			errors.Is(err, domain.ErrInvalidPriceRange),
			errors.Is(err, domain.ErrInvalidRestaurantType):
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateReview, err)
		}
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) GetProfileReviews(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	rows, err := h.reviewService.GetProfileReviews(c.Context(), userTag)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReview, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, rows)
}

func (h *reviewHandler) GetRestaurantTypes(c *fiber.Ctx) error {
	types, err := h.reviewService.GetRestaurantTypes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRestTypes, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, types)
}

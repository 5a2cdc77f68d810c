package handlers

import (
	"errors"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/internal/api/presenters"
	"github.com/Smadden00/sophsAppAPI/pkg/upload"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UploadHandler interface {
		PresignImageUpload(c *fiber.Ctx) error
	}

	uploadHandler struct {
		uploadService upload.UploadService
		validator     *validator.Validate
	}
)

func NewUploadHandler(uploadService upload.UploadService, validator *validator.Validate) UploadHandler {
	return &uploadHandler{
		uploadService: uploadService,
		validator:     validator,
	}
}

func (h *uploadHandler) PresignImageUpload(c *fiber.Ctx) error {
	userTag := c.Locals("user_tag").(string)

	req := new(domain.PresignUploadRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.ErrUnsupportedContentType.Error())
	}

	res, err := h.uploadService.PresignImageUpload(c.Context(), *req, userTag)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedContentType) {
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPresignUpload, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

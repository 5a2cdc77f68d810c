package handlers

import (
	"errors"

	"github.com/Smadden00/sophsAppAPI/domain"
	"github.com/Smadden00/sophsAppAPI/internal/api/presenters"
	"github.com/Smadden00/sophsAppAPI/pkg/city"
	"github.com/gofiber/fiber/v2"
)

type (
	CityHandler interface {
		GetCitiesByState(c *fiber.Ctx) error
	}

	cityHandler struct {
		cityService city.CityService
	}
)

func NewCityHandler(cityService city.CityService) CityHandler {
	return &cityHandler{cityService: cityService}
}

func (h *cityHandler) GetCitiesByState(c *fiber.Ctx) error {
	cities, err := h.cityService.GetCitiesByState(c.Context(), c.Query("state"))
	if err != nil {
		if errors.Is(err, domain.ErrStateRequired) {
			return presenters.MessageResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCities, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, cities)
}

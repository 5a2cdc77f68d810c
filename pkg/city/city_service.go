package city

import (
	"context"
	"strings"

	"github.com/Smadden00/sophsAppAPI/domain"
)

type (
	CityService interface {
		GetCitiesByState(ctx context.Context, state string) ([]domain.CityResponse, error)
	}

	cityService struct {
		cityRepository CityRepository
	}
)

func NewCityService(cityRepository CityRepository) CityService {
	return &cityService{cityRepository: cityRepository}
}

func (s *cityService) GetCitiesByState(ctx context.Context, state string) ([]domain.CityResponse, error) {
	if strings.TrimSpace(state) == "" {
		return nil, domain.ErrStateRequired
	}

	cities, err := s.cityRepository.GetCitiesByState(ctx, strings.ToUpper(strings.TrimSpace(state)))
	if err != nil {
		return nil, err
	}

	out := make([]domain.CityResponse, 0, len(cities))
	for _, c := range cities {
		out = append(out, domain.CityResponse{City: c.City, State: c.StateCode})
	}
	return out, nil
}

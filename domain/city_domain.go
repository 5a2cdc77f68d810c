package domain

import "errors"

var (
	MessageFailedGetCities = "There was an error while fetching cities and we could not complete your request"

	ErrStateRequired = errors.New("`state` query parameter is required")
)

type CityResponse struct {
	City  string `json:"city"`
	State string `json:"state"`
}

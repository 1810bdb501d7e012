// Package service answers cascading country, state and city lookups.
package service

import (
	"inquiry_portal_backend/internal/locations/domain"
	"inquiry_portal_backend/internal/locations/transport"
	"inquiry_portal_backend/platform/apperr"
)

// Provider is the read-only reference dataset.
type Provider interface {
	Countries() []domain.Country
	Country(ref string) (domain.Country, bool)
	State(countryRef, stateRef string) (domain.State, bool)
	Defaults() (country, state string)
}

type Service struct {
	provider Provider
}

func New(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) Countries() []transport.CountryResponse {
	countries := s.provider.Countries()
	out := make([]transport.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, transport.CountryResponse{ISOCode: c.ISOCode, Name: c.Name, PhoneCode: c.Phone})
	}
	return out
}

// States lists the states of a country given by code or name.
func (s *Service) States(countryRef string) ([]transport.StateResponse, error) {
	c, ok := s.provider.Country(countryRef)
	if !ok {
		return nil, apperr.NotFound("country not found").WithCode("not_found")
	}
	out := make([]transport.StateResponse, 0, len(c.States))
	for _, st := range c.States {
		out = append(out, transport.StateResponse{ISOCode: st.ISOCode, Name: st.Name, CountryCode: c.ISOCode})
	}
	return out, nil
}

// Cities lists the cities of a state.
func (s *Service) Cities(countryRef, stateRef string) ([]transport.CityResponse, error) {
	c, ok := s.provider.Country(countryRef)
	if !ok {
		return nil, apperr.NotFound("country not found").WithCode("not_found")
	}
	st, ok := s.provider.State(c.ISOCode, stateRef)
	if !ok {
		return nil, apperr.NotFound("state not found").WithCode("not_found")
	}
	out := make([]transport.CityResponse, 0, len(st.Cities))
	for _, name := range st.Cities {
		out = append(out, transport.CityResponse{Name: name, StateCode: st.ISOCode, CountryCode: c.ISOCode})
	}
	return out, nil
}

func (s *Service) Defaults() transport.DefaultsResponse {
	country, state := s.provider.Defaults()
	return transport.DefaultsResponse{CountryCode: country, StateCode: state}
}

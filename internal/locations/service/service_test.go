package service

import (
	"testing"

	"inquiry_portal_backend/internal/locations/repository"
	"inquiry_portal_backend/platform/apperr"
)

func newService(t *testing.T) *Service {
	t.Helper()
	p, err := repository.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return New(p)
}

func TestCascade(t *testing.T) {
	svc := newService(t)

	states, err := svc.States("AE")
	if err != nil {
		t.Fatalf("States() error = %v", err)
	}
	if len(states) != 7 {
		t.Fatalf("len(states) = %d, want 7 emirates", len(states))
	}

	cities, err := svc.Cities("AE", "DU")
	if err != nil {
		t.Fatalf("Cities() error = %v", err)
	}
	if cities[0].Name != "Dubai" || cities[0].CountryCode != "AE" || cities[0].StateCode != "DU" {
		t.Fatalf("unexpected first city %+v", cities[0])
	}
}

func TestUnknownReferences(t *testing.T) {
	svc := newService(t)

	if _, err := svc.States("ZZ"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("States(ZZ) error = %v, want not found", err)
	}
	if _, err := svc.Cities("AE", "ZZ"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("Cities(AE, ZZ) error = %v, want not found", err)
	}
}

func TestDefaults(t *testing.T) {
	if got := newService(t).Defaults(); got.CountryCode != "AE" || got.StateCode != "DU" {
		t.Fatalf("Defaults() = %+v", got)
	}
}

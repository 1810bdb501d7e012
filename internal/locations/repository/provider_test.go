package repository

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDataset(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	country, state := p.Defaults()
	if country != "AE" || state != "DU" {
		t.Fatalf("Defaults() = %s/%s, want AE/DU", country, state)
	}

	dubai, ok := p.State("ae", "Dubai")
	if !ok {
		t.Fatal("expected Dubai in AE")
	}
	if len(dubai.Cities) == 0 || dubai.Cities[0] != "Dubai" {
		t.Fatalf("unexpected Dubai cities %v", dubai.Cities)
	}

	if _, ok := p.Country("United Arab Emirates"); !ok {
		t.Fatal("expected lookup by name to succeed")
	}
	if _, ok := p.State("AE", "Nowhere"); ok {
		t.Fatal("expected unknown state to be missing")
	}
}

func TestCountriesSortedByName(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	countries := p.Countries()
	for i := 1; i < len(countries); i++ {
		if countries[i-1].Name > countries[i].Name {
			t.Fatalf("countries not sorted: %s before %s", countries[i-1].Name, countries[i].Name)
		}
	}
	for _, c := range countries {
		got, ok := p.Country(c.ISOCode)
		if !ok || got.Name != c.Name {
			t.Fatalf("index mismatch for %s: %v", c.ISOCode, got.Name)
		}
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte("countries:\n  - {isoCode: AE, name: A}\n  - {isoCode: ae, name: B}\n"))
	if err == nil {
		t.Fatal("expected duplicate country error")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	body := "defaultCountry: NL\ncountries:\n  - isoCode: NL\n    name: Netherlands\n    states:\n      - {isoCode: NH, name: North Holland, cities: [Amsterdam]}\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s, ok := p.State("NL", "nh"); !ok || s.Cities[0] != "Amsterdam" {
		t.Fatalf("unexpected state %v, %v", s, ok)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

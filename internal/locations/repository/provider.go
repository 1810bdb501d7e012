// Package repository loads the read-only location reference dataset.
package repository

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"inquiry_portal_backend/internal/locations/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/locations.yaml
var defaultDataset []byte

// Provider answers lookups against an immutable dataset. Codes and names match
// case-insensitively.
type Provider struct {
	data      domain.Dataset
	countries map[string]*domain.Country
}

// Load reads the dataset at path, or the embedded default when path is empty.
func Load(path string) (*Provider, error) {
	raw := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read locations dataset: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes a YAML dataset and checks it for duplicate codes.
func Parse(raw []byte) (*Provider, error) {
	var data domain.Dataset
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode locations dataset: %w", err)
	}

	p := &Provider{data: data, countries: make(map[string]*domain.Country, len(data.Countries))}
	for i := range p.data.Countries {
		c := &p.data.Countries[i]
		key := normalizeKey(c.ISOCode)
		if key == "" || c.Name == "" {
			return nil, fmt.Errorf("locations dataset: country %d needs isoCode and name", i)
		}
		if _, dup := p.countries[key]; dup {
			return nil, fmt.Errorf("locations dataset: duplicate country %s", c.ISOCode)
		}
		seen := make(map[string]struct{}, len(c.States))
		for _, s := range c.States {
			sk := normalizeKey(s.ISOCode)
			if _, dup := seen[sk]; dup {
				return nil, fmt.Errorf("locations dataset: duplicate state %s in %s", s.ISOCode, c.ISOCode)
			}
			seen[sk] = struct{}{}
		}
		sort.SliceStable(c.States, func(a, b int) bool { return c.States[a].Name < c.States[b].Name })
		p.countries[key] = c
	}
	sort.SliceStable(p.data.Countries, func(a, b int) bool { return p.data.Countries[a].Name < p.data.Countries[b].Name })
	// Sorting moved the elements; rebuild the index.
	for i := range p.data.Countries {
		p.countries[normalizeKey(p.data.Countries[i].ISOCode)] = &p.data.Countries[i]
	}
	return p, nil
}

// Countries returns every country sorted by name.
func (p *Provider) Countries() []domain.Country {
	return p.data.Countries
}

// Country finds a country by ISO code or name.
func (p *Provider) Country(ref string) (domain.Country, bool) {
	if c, ok := p.countries[normalizeKey(ref)]; ok {
		return *c, true
	}
	for _, c := range p.data.Countries {
		if strings.EqualFold(c.Name, strings.TrimSpace(ref)) {
			return c, true
		}
	}
	return domain.Country{}, false
}

// State finds a state of country by ISO code or name.
func (p *Provider) State(countryRef, stateRef string) (domain.State, bool) {
	c, ok := p.Country(countryRef)
	if !ok {
		return domain.State{}, false
	}
	ref := strings.TrimSpace(stateRef)
	for _, s := range c.States {
		if strings.EqualFold(s.ISOCode, ref) || strings.EqualFold(s.Name, ref) {
			return s, true
		}
	}
	return domain.State{}, false
}

// Defaults returns the preselected country and state codes.
func (p *Provider) Defaults() (country, state string) {
	return p.data.DefaultCountry, p.data.DefaultState
}

func normalizeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

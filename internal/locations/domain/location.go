// Package domain holds the country, state and city reference model.
package domain

// Country is a top-level location with ISO 3166-1 alpha-2 code.
type Country struct {
	ISOCode string  `yaml:"isoCode"`
	Name    string  `yaml:"name"`
	Phone   string  `yaml:"phoneCode"`
	States  []State `yaml:"states"`
}

// State is a first-level subdivision of a country.
type State struct {
	ISOCode string   `yaml:"isoCode"`
	Name    string   `yaml:"name"`
	Cities  []string `yaml:"cities"`
}

// Dataset is the whole reference tree plus the preselected form defaults.
type Dataset struct {
	DefaultCountry string    `yaml:"defaultCountry"`
	DefaultState   string    `yaml:"defaultState"`
	Countries      []Country `yaml:"countries"`
}

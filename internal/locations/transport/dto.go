package transport

type CountryResponse struct {
	ISOCode   string `json:"isoCode"`
	Name      string `json:"name"`
	PhoneCode string `json:"phoneCode,omitempty"`
}

type StateResponse struct {
	ISOCode     string `json:"isoCode"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

type CityResponse struct {
	Name        string `json:"name"`
	StateCode   string `json:"stateCode"`
	CountryCode string `json:"countryCode"`
}

// DefaultsResponse names the selection a new inquiry form starts with.
type DefaultsResponse struct {
	CountryCode string `json:"countryCode"`
	StateCode   string `json:"stateCode"`
}

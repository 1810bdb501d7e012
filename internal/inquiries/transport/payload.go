package transport

import (
	"bytes"
	"encoding/json"
	"errors"

	"inquiry_portal_backend/internal/inquiries/domain"
)

// InquiryPayload is a raw create or update body. Every key keeps its
// presence so updates can tell absent from null. Provenance keys (id,
// createdByUser, createdAt, updatedAt) are not decoded at all.
type InquiryPayload struct {
	CreatedBy                 domain.Optional[string] `json:"createdBy"`
	Name                      domain.Optional[string] `json:"name"`
	Email                     domain.Optional[string] `json:"email"`
	ContactNumber             domain.Optional[string] `json:"contactNumber"`
	LegacyContactNumber       domain.Optional[string] `json:"ContactNumber"`
	JobType                   domain.Optional[string] `json:"jobType"`
	Country                   domain.Optional[string] `json:"country"`
	State                     domain.Optional[string] `json:"state"`
	City                      domain.Optional[string] `json:"city"`
	Area                      domain.Optional[string] `json:"area"`
	PropertyType              domain.Optional[string] `json:"propertyType"`
	BuildingType              domain.Optional[string] `json:"buildingType"`
	BuildingName              domain.Optional[string] `json:"buildingName"`
	MapLocation               domain.Optional[string] `json:"mapLocation"`
	InspectionPropertyType    domain.Optional[string] `json:"inspectionPropertyType"`
	BudgetRange               domain.Optional[string] `json:"budgetRange"`
	ProjectUrgency            domain.Optional[string] `json:"projectUrgency"`
	SpecialRequirements       domain.Optional[string] `json:"specialRequirements"`
	PreferredInspectionDate   FlexibleDate            `json:"preferredInspectionDate"`
	AlternativeInspectionDate FlexibleDate            `json:"alternativeInspectionDate"`
	Status                    domain.Optional[string] `json:"status"`
}

// Contact returns contactNumber, falling back to the legacy ContactNumber key.
func (p InquiryPayload) Contact() domain.Optional[string] {
	if p.ContactNumber.Set {
		return p.ContactNumber
	}
	return p.LegacyContactNumber
}

// FlexibleDate keeps whatever JSON value the client sent for a date.
// domain.CoerceDate decides what it means.
type FlexibleDate struct {
	Raw any
	Set bool
}

func (d FlexibleDate) IsZero() bool {
	return !d.Set
}

func (d *FlexibleDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(&d.Raw)
}

var errEmptyBatch = errors.New("request body must contain at least one inquiry")

// DecodeCreateBody accepts a single object or an array of objects.
func DecodeCreateBody(body []byte) ([]InquiryPayload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domain.ErrMalformedBody(errors.New("empty body"))
	}

	if trimmed[0] == '[' {
		var payloads []InquiryPayload
		if err := json.Unmarshal(trimmed, &payloads); err != nil {
			return nil, domain.ErrMalformedBody(err)
		}
		if len(payloads) == 0 {
			return nil, domain.ErrMalformedBody(errEmptyBatch)
		}
		return payloads, nil
	}

	payload, err := DecodeUpdateBody(trimmed)
	if err != nil {
		return nil, err
	}
	return []InquiryPayload{payload}, nil
}

// DecodeUpdateBody accepts exactly one JSON object.
func DecodeUpdateBody(body []byte) (InquiryPayload, error) {
	var payload InquiryPayload
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return payload, domain.ErrMalformedBody(errors.New("expected a JSON object"))
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return payload, domain.ErrMalformedBody(err)
	}
	return payload, nil
}

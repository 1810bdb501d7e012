package transport

import (
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"

	"github.com/google/uuid"
)

// ListQuery carries the list filters from the query string. Enum and id
// values are kept as strings: values outside their set match nothing.
type ListQuery struct {
	CreatedBy              string `form:"createdBy"`
	JobType                string `form:"jobType"`
	PropertyType           string `form:"propertyType"`
	BuildingType           string `form:"buildingType"`
	InspectionPropertyType string `form:"inspectionPropertyType"`
	BudgetRange            string `form:"budgetRange"`
	ProjectUrgency         string `form:"projectUrgency"`
	Status                 string `form:"status"`
	Country                string `form:"country" validate:"max=100"`
	State                  string `form:"state" validate:"max=100"`
	City                   string `form:"city" validate:"max=100"`
	Area                   string `form:"area" validate:"max=200"`
	Search                 string `form:"search" validate:"max=200"`
	CreatedFrom            string `form:"createdFrom"`
	CreatedTo              string `form:"createdTo"`
	Limit                  int    `form:"limit" validate:"min=0,max=1000"`
	Offset                 int    `form:"offset" validate:"min=0"`
}

type CreatorSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type InquiryResponse struct {
	ID                        uuid.UUID               `json:"id"`
	CreatedBy                 uuid.UUID               `json:"createdBy"`
	Name                      string                  `json:"name"`
	Email                     string                  `json:"email"`
	ContactNumber             string                  `json:"contactNumber"`
	JobType                   string                  `json:"jobType"`
	Country                   *string                 `json:"country"`
	State                     *string                 `json:"state"`
	City                      *string                 `json:"city"`
	Area                      string                  `json:"area"`
	PropertyType              *string                 `json:"propertyType"`
	BuildingType              *string                 `json:"buildingType"`
	BuildingName              *string                 `json:"buildingName"`
	MapLocation               *string                 `json:"mapLocation"`
	InspectionPropertyType    *string                 `json:"inspectionPropertyType"`
	BudgetRange               string                  `json:"budgetRange"`
	ProjectUrgency            *string                 `json:"projectUrgency"`
	SpecialRequirements       *string                 `json:"specialRequirements"`
	PreferredInspectionDate   *time.Time              `json:"preferredInspectionDate"`
	AlternativeInspectionDate *time.Time              `json:"alternativeInspectionDate"`
	Status                    string                  `json:"status"`
	CreatedAt                 time.Time               `json:"createdAt"`
	UpdatedAt                 time.Time               `json:"updatedAt"`
	CreatedByUser             *CreatorSummaryResponse `json:"createdByUser"`
}

type UpdateResponse struct {
	Message string          `json:"message"`
	Data    InquiryResponse `json:"data"`
}

type OptionsResponse struct {
	Fields map[string][]string `json:"fields"`
}

// ToResponse converts an inquiry without a creator summary.
func ToResponse(in domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:                        in.ID,
		CreatedBy:                 in.CreatedBy,
		Name:                      in.Name,
		Email:                     in.Email,
		ContactNumber:             in.ContactNumber,
		JobType:                   string(in.JobType),
		Country:                   in.Country,
		State:                     in.State,
		City:                      in.City,
		Area:                      in.Area,
		PropertyType:              enumPtr(in.PropertyType),
		BuildingType:              enumPtr(in.BuildingType),
		BuildingName:              in.BuildingName,
		MapLocation:               in.MapLocation,
		InspectionPropertyType:    enumPtr(in.InspectionPropertyType),
		BudgetRange:               string(in.BudgetRange),
		ProjectUrgency:            enumPtr(in.ProjectUrgency),
		SpecialRequirements:       in.SpecialRequirements,
		PreferredInspectionDate:   in.PreferredInspectionDate,
		AlternativeInspectionDate: in.AlternativeInspectionDate,
		Status:                    string(in.Status),
		CreatedAt:                 in.CreatedAt,
		UpdatedAt:                 in.UpdatedAt,
	}
}

// ToJoinedResponse converts an inquiry together with its creator.
func ToJoinedResponse(in domain.InquiryWithCreator) InquiryResponse {
	resp := ToResponse(in.Inquiry)
	if in.Creator != nil {
		resp.CreatedByUser = &CreatorSummaryResponse{
			ID:    in.Creator.ID,
			Name:  in.Creator.Name,
			Email: in.Creator.Email,
			Role:  in.Creator.Role,
		}
	}
	return resp
}

func ToResponses(items []domain.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(items))
	for _, in := range items {
		out = append(out, ToResponse(in))
	}
	return out
}

func ToJoinedResponses(items []domain.InquiryWithCreator) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(items))
	for _, in := range items {
		out = append(out, ToJoinedResponse(in))
	}
	return out
}

func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a customer service request captured by a sales representative.
type Inquiry struct {
	ID                        uuid.UUID
	CreatedBy                 uuid.UUID
	Name                      string
	Email                     string
	ContactNumber             string
	JobType                   JobType
	Country                   *string
	State                     *string
	City                      *string
	Area                      string
	PropertyType              *PropertyType
	BuildingType              *BuildingType
	BuildingName              *string
	MapLocation               *string
	InspectionPropertyType    *InspectionPropertyType
	BudgetRange               BudgetRange
	ProjectUrgency            *ProjectUrgency
	SpecialRequirements       *string
	PreferredInspectionDate   *time.Time
	AlternativeInspectionDate *time.Time
	Status                    Status
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// CreatorSummary is the part of a user exposed next to an inquiry.
type CreatorSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// InquiryWithCreator pairs an inquiry with its creator. Creator is nil when
// the user no longer resolves.
type InquiryWithCreator struct {
	Inquiry
	Creator *CreatorSummary
}

// Patch is a normalized partial update. Unset fields are left untouched and
// null values clear optional columns. Required columns are never null.
type Patch struct {
	Name                      Optional[string]
	Email                     Optional[string]
	ContactNumber             Optional[string]
	JobType                   Optional[JobType]
	Country                   Optional[string]
	State                     Optional[string]
	City                      Optional[string]
	Area                      Optional[string]
	PropertyType              Optional[PropertyType]
	BuildingType              Optional[BuildingType]
	BuildingName              Optional[string]
	MapLocation               Optional[string]
	InspectionPropertyType    Optional[InspectionPropertyType]
	BudgetRange               Optional[BudgetRange]
	ProjectUrgency            Optional[ProjectUrgency]
	SpecialRequirements       Optional[string]
	PreferredInspectionDate   Optional[time.Time]
	AlternativeInspectionDate Optional[time.Time]
	Status                    Optional[Status]
}

// Apply returns in with the patch merged and UpdatedAt set to now, never
// earlier than CreatedAt.
func (p Patch) Apply(in Inquiry, now time.Time) Inquiry {
	out := in
	applyRequired(&out.Name, p.Name)
	applyRequired(&out.Email, p.Email)
	applyRequired(&out.ContactNumber, p.ContactNumber)
	applyRequired(&out.JobType, p.JobType)
	applyRequired(&out.Area, p.Area)
	applyRequired(&out.BudgetRange, p.BudgetRange)
	applyRequired(&out.Status, p.Status)
	applyOptional(&out.Country, p.Country)
	applyOptional(&out.State, p.State)
	applyOptional(&out.City, p.City)
	applyOptional(&out.PropertyType, p.PropertyType)
	applyOptional(&out.BuildingType, p.BuildingType)
	applyOptional(&out.BuildingName, p.BuildingName)
	applyOptional(&out.MapLocation, p.MapLocation)
	applyOptional(&out.InspectionPropertyType, p.InspectionPropertyType)
	applyOptional(&out.ProjectUrgency, p.ProjectUrgency)
	applyOptional(&out.SpecialRequirements, p.SpecialRequirements)
	applyOptional(&out.PreferredInspectionDate, p.PreferredInspectionDate)
	applyOptional(&out.AlternativeInspectionDate, p.AlternativeInspectionDate)

	out.UpdatedAt = now
	if out.UpdatedAt.Before(out.CreatedAt) {
		out.UpdatedAt = out.CreatedAt
	}
	return out
}

func applyRequired[T any](dst *T, o Optional[T]) {
	if o.Set && o.Value != nil {
		*dst = *o.Value
	}
}

func applyOptional[T any](dst **T, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

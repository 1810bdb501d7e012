// Package domain provides core business rules for the inquiries bounded context.
package domain

// Field names a categorical inquiry attribute backed by the registry.
type Field string

const (
	FieldJobType                Field = "jobType"
	FieldPropertyType           Field = "propertyType"
	FieldBuildingType           Field = "buildingType"
	FieldInspectionPropertyType Field = "inspectionPropertyType"
	FieldBudgetRange            Field = "budgetRange"
	FieldProjectUrgency         Field = "projectUrgency"
	FieldStatus                 Field = "status"
)

type (
	JobType                string
	PropertyType           string
	BuildingType           string
	InspectionPropertyType string
	BudgetRange            string
	ProjectUrgency         string
	Status                 string
)

const (
	JobTypeJoineries  JobType = "joineries-wood-work"
	JobTypePainting   JobType = "painting-decorating"
	JobTypeElectrical JobType = "electrical"
	JobTypeSanitary   JobType = "sanitary-plumbing-toilets-washroom"
	JobTypeEquipment  JobType = "equipment-installation-maintenance"
	JobTypeOther      JobType = "other"
)

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
)

const (
	BuildingVilla     BuildingType = "villa"
	BuildingApartment BuildingType = "apartment"
	BuildingShop      BuildingType = "shop"
	BuildingOffice    BuildingType = "office"
)

const (
	InspectionResidential InspectionPropertyType = "residential"
	InspectionCommercial  InspectionPropertyType = "commercial"
	InspectionIndustrial  InspectionPropertyType = "industrial"
)

const (
	BudgetUnder10k   BudgetRange = "under-10k"
	Budget10kTo50k   BudgetRange = "10k-50k"
	Budget50kTo100k  BudgetRange = "50k-100k"
	Budget100kTo500k BudgetRange = "100k-500k"
	BudgetAbove500k  BudgetRange = "above-500k"
)

const (
	UrgencyUrgent   ProjectUrgency = "urgent"
	UrgencyNormal   ProjectUrgency = "normal"
	UrgencyFlexible ProjectUrgency = "flexible"
	UrgencyFuture   ProjectUrgency = "future-planning"
)

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusOnHold     Status = "on-hold"
)

// fieldOrder fixes the order fields are reported in.
var fieldOrder = []Field{
	FieldJobType,
	FieldPropertyType,
	FieldBuildingType,
	FieldInspectionPropertyType,
	FieldBudgetRange,
	FieldProjectUrgency,
	FieldStatus,
}

// registry lists each field's tokens in display order. The first entry is the
// canonical UI default, which the API never applies on its own.
var registry = map[Field][]string{
	FieldJobType: {
		string(JobTypeJoineries),
		string(JobTypePainting),
		string(JobTypeElectrical),
		string(JobTypeSanitary),
		string(JobTypeEquipment),
		string(JobTypeOther),
	},
	FieldPropertyType: {string(PropertyResidential), string(PropertyCommercial)},
	FieldBuildingType: {
		string(BuildingVilla),
		string(BuildingApartment),
		string(BuildingShop),
		string(BuildingOffice),
	},
	FieldInspectionPropertyType: {
		string(InspectionResidential),
		string(InspectionCommercial),
		string(InspectionIndustrial),
	},
	FieldBudgetRange: {
		string(BudgetUnder10k),
		string(Budget10kTo50k),
		string(Budget50kTo100k),
		string(Budget100kTo500k),
		string(BudgetAbove500k),
	},
	FieldProjectUrgency: {
		string(UrgencyUrgent),
		string(UrgencyNormal),
		string(UrgencyFlexible),
		string(UrgencyFuture),
	},
	FieldStatus: {
		string(StatusNew),
		string(StatusInProgress),
		string(StatusCompleted),
		string(StatusCancelled),
		string(StatusOnHold),
	},
}

var membership = buildMembership()

func buildMembership() map[Field]map[string]struct{} {
	out := make(map[Field]map[string]struct{}, len(registry))
	for field, values := range registry {
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		out[field] = set
	}
	return out
}

// IsMember reports whether value is an allowed token for field. The check is
// exact and case-sensitive.
func IsMember(field Field, value string) bool {
	_, ok := membership[field][value]
	return ok
}

// Values returns a copy of the ordered tokens for field.
func Values(field Field) []string {
	return append([]string(nil), registry[field]...)
}

// Fields returns every registry-backed field in reporting order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// Options returns the whole registry keyed by field name.
func Options() map[string][]string {
	out := make(map[string][]string, len(fieldOrder))
	for _, field := range fieldOrder {
		out[string(field)] = Values(field)
	}
	return out
}

func (v JobType) Valid() bool                { return IsMember(FieldJobType, string(v)) }
func (v PropertyType) Valid() bool           { return IsMember(FieldPropertyType, string(v)) }
func (v BuildingType) Valid() bool           { return IsMember(FieldBuildingType, string(v)) }
func (v InspectionPropertyType) Valid() bool { return IsMember(FieldInspectionPropertyType, string(v)) }
func (v BudgetRange) Valid() bool            { return IsMember(FieldBudgetRange, string(v)) }
func (v ProjectUrgency) Valid() bool         { return IsMember(FieldProjectUrgency, string(v)) }
func (v Status) Valid() bool                 { return IsMember(FieldStatus, string(v)) }

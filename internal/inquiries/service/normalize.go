package service

import (
	"regexp"
	"strings"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"
	"inquiry_portal_backend/internal/inquiries/transport"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/sanitize"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required keys in the order they are reported.
const (
	keyCreatedBy     = "createdBy"
	keyName          = "name"
	keyEmail         = "email"
	keyContactNumber = "contactNumber"
	keyJobType       = "jobType"
	keyArea          = "area"
	keyBudgetRange   = "budgetRange"
)

// NormalizeCreate validates a create payload and builds the record to store.
// createdBy falls back to the caller. Creator existence is checked by Create.
func (s *Service) NormalizeCreate(p transport.InquiryPayload, caller httpkit.Identity, now time.Time) (domain.Inquiry, error) {
	var missing []string

	createdBy := trimmed(p.CreatedBy)
	if createdBy == "" && caller != nil && caller.IsAuthenticated() {
		createdBy = caller.UserID().String()
	}
	if createdBy == "" {
		missing = append(missing, keyCreatedBy)
	}

	name := sanitize.Text(trimmed(p.Name))
	email := trimmed(p.Email)
	contact := trimmed(p.Contact())
	jobType := trimmed(p.JobType)
	area := sanitize.Text(trimmed(p.Area))
	budget := trimmed(p.BudgetRange)

	for _, req := range []struct {
		key   string
		value string
	}{
		{keyName, name},
		{keyEmail, email},
		{keyContactNumber, contact},
		{keyJobType, jobType},
		{keyArea, area},
		{keyBudgetRange, budget},
	} {
		if req.value == "" {
			missing = append(missing, req.key)
		}
	}
	if len(missing) > 0 {
		return domain.Inquiry{}, domain.ErrMissingFields(missing)
	}

	creatorID, err := uuid.Parse(createdBy)
	if err != nil {
		return domain.Inquiry{}, domain.ErrUnknownCreator()
	}
	if !emailPattern.MatchString(email) {
		return domain.Inquiry{}, domain.ErrInvalidFormat(keyEmail)
	}

	in := domain.Inquiry{
		ID:                        uuid.New(),
		CreatedBy:                 creatorID,
		Name:                      name,
		Email:                     email,
		ContactNumber:             s.phone.NormalizeE164(contact),
		JobType:                   domain.JobType(jobType),
		Country:                   optionalText(p.Country),
		State:                     optionalText(p.State),
		City:                      optionalText(p.City),
		Area:                      area,
		BuildingName:              optionalText(p.BuildingName),
		MapLocation:               optionalText(p.MapLocation),
		BudgetRange:               domain.BudgetRange(budget),
		SpecialRequirements:       optionalText(p.SpecialRequirements),
		PreferredInspectionDate:   coerceDate(p.PreferredInspectionDate),
		AlternativeInspectionDate: coerceDate(p.AlternativeInspectionDate),
		Status:                    domain.StatusNew,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	if !in.JobType.Valid() {
		return domain.Inquiry{}, domain.ErrInvalidFormat(keyJobType)
	}
	if !in.BudgetRange.Valid() {
		return domain.Inquiry{}, domain.ErrInvalidFormat(keyBudgetRange)
	}
	if in.PropertyType, err = createEnum[domain.PropertyType](p.PropertyType, domain.FieldPropertyType); err != nil {
		return domain.Inquiry{}, err
	}
	if in.BuildingType, err = createEnum[domain.BuildingType](p.BuildingType, domain.FieldBuildingType); err != nil {
		return domain.Inquiry{}, err
	}
	if in.InspectionPropertyType, err = createEnum[domain.InspectionPropertyType](p.InspectionPropertyType, domain.FieldInspectionPropertyType); err != nil {
		return domain.Inquiry{}, err
	}
	if in.ProjectUrgency, err = createEnum[domain.ProjectUrgency](p.ProjectUrgency, domain.FieldProjectUrgency); err != nil {
		return domain.Inquiry{}, err
	}
	status, err := createEnum[domain.Status](p.Status, domain.FieldStatus)
	if err != nil {
		return domain.Inquiry{}, err
	}
	if status != nil {
		in.Status = *status
	}

	return in, nil
}

// NormalizeUpdate turns an update payload into a patch. Provenance keys never
// reach the patch. Required fields may be omitted but not emptied. Enum
// values outside the registry are dropped, and unparseable dates clear the
// column.
func (s *Service) NormalizeUpdate(p transport.InquiryPayload) (domain.Patch, error) {
	var (
		patch   domain.Patch
		missing []string
	)

	required := func(key string, o domain.Optional[string], clean func(string) string) domain.Optional[string] {
		if !o.Set {
			return domain.Optional[string]{}
		}
		value := clean(trimmed(o))
		if value == "" {
			missing = append(missing, key)
			return domain.Optional[string]{}
		}
		return domain.Some(value)
	}

	patch.Name = required(keyName, p.Name, sanitize.Text)
	patch.Email = required(keyEmail, p.Email, asIs)
	patch.ContactNumber = required(keyContactNumber, p.Contact(), s.phone.NormalizeE164)
	jobType := required(keyJobType, p.JobType, asIs)
	patch.Area = required(keyArea, p.Area, sanitize.Text)
	budget := required(keyBudgetRange, p.BudgetRange, asIs)
	if len(missing) > 0 {
		return domain.Patch{}, domain.ErrMissingFields(missing)
	}

	if patch.Email.Set && !emailPattern.MatchString(*patch.Email.Value) {
		return domain.Patch{}, domain.ErrInvalidFormat(keyEmail)
	}

	patch.JobType = requiredEnum[domain.JobType](jobType, domain.FieldJobType)
	patch.BudgetRange = requiredEnum[domain.BudgetRange](budget, domain.FieldBudgetRange)
	patch.Status = requiredEnum[domain.Status](nonEmpty(p.Status), domain.FieldStatus)
	patch.PropertyType = optionalEnum[domain.PropertyType](p.PropertyType, domain.FieldPropertyType)
	patch.BuildingType = optionalEnum[domain.BuildingType](p.BuildingType, domain.FieldBuildingType)
	patch.InspectionPropertyType = optionalEnum[domain.InspectionPropertyType](p.InspectionPropertyType, domain.FieldInspectionPropertyType)
	patch.ProjectUrgency = optionalEnum[domain.ProjectUrgency](p.ProjectUrgency, domain.FieldProjectUrgency)

	patch.Country = optionalTextPatch(p.Country)
	patch.State = optionalTextPatch(p.State)
	patch.City = optionalTextPatch(p.City)
	patch.BuildingName = optionalTextPatch(p.BuildingName)
	patch.MapLocation = optionalTextPatch(p.MapLocation)
	patch.SpecialRequirements = optionalTextPatch(p.SpecialRequirements)

	patch.PreferredInspectionDate = datePatch(p.PreferredInspectionDate)
	patch.AlternativeInspectionDate = datePatch(p.AlternativeInspectionDate)

	return patch, nil
}

func asIs(s string) string { return s }

func trimmed(o domain.Optional[string]) string {
	if o.Value == nil {
		return ""
	}
	return strings.TrimSpace(*o.Value)
}

// nonEmpty turns null and blank values into absent ones.
func nonEmpty(o domain.Optional[string]) domain.Optional[string] {
	if v := trimmed(o); v != "" {
		return domain.Some(v)
	}
	return domain.Optional[string]{}
}

func optionalText(o domain.Optional[string]) *string {
	return sanitize.TextPtr(o.Value)
}

func optionalTextPatch(o domain.Optional[string]) domain.Optional[string] {
	if !o.Set {
		return o
	}
	if v := sanitize.TextPtr(o.Value); v != nil {
		return domain.Some(*v)
	}
	return domain.Null[string]()
}

func coerceDate(d transport.FlexibleDate) *time.Time {
	if !d.Set {
		return nil
	}
	return domain.CoerceDate(d.Raw)
}

func datePatch(d transport.FlexibleDate) domain.Optional[time.Time] {
	if !d.Set {
		return domain.Optional[time.Time]{}
	}
	if t := domain.CoerceDate(d.Raw); t != nil {
		return domain.Some(*t)
	}
	return domain.Null[time.Time]()
}

// createEnum rejects tokens outside the registry. Blank and null are absent.
func createEnum[T ~string](o domain.Optional[string], field domain.Field) (*T, error) {
	value := trimmed(o)
	if value == "" {
		return nil, nil
	}
	if !domain.IsMember(field, value) {
		return nil, domain.ErrInvalidFormat(string(field))
	}
	v := T(value)
	return &v, nil
}

// requiredEnum keeps a member token and drops anything else.
func requiredEnum[T ~string](o domain.Optional[string], field domain.Field) domain.Optional[T] {
	if !o.Set || o.Value == nil || !domain.IsMember(field, *o.Value) {
		return domain.Optional[T]{}
	}
	return domain.Some(T(*o.Value))
}

// optionalEnum clears on null or blank, keeps members and drops the rest.
func optionalEnum[T ~string](o domain.Optional[string], field domain.Field) domain.Optional[T] {
	if !o.Set {
		return domain.Optional[T]{}
	}
	value := trimmed(o)
	if value == "" {
		return domain.Null[T]()
	}
	if !domain.IsMember(field, value) {
		return domain.Optional[T]{}
	}
	return domain.Some(T(value))
}

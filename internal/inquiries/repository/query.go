package repository

import (
	"fmt"
	"strings"
	"time"

	"inquiry_portal_backend/internal/inquiries/domain"

	"github.com/google/uuid"
)

const inquiryColumns = `i.id, i.created_by, i.name, i.email, i.contact_number, i.job_type,
	i.country, i.state, i.city, i.area, i.property_type, i.building_type, i.building_name,
	i.map_location, i.inspection_property_type, i.budget_range, i.project_urgency,
	i.special_requirements, i.preferred_inspection_date, i.alternative_inspection_date,
	i.status, i.created_at, i.updated_at`

const returningColumns = `id, created_by, name, email, contact_number, job_type,
	country, state, city, area, property_type, building_type, building_name,
	map_location, inspection_property_type, budget_range, project_urgency,
	special_requirements, preferred_inspection_date, alternative_inspection_date,
	status, created_at, updated_at`

const creatorColumns = `u.id, u.name, u.email, u.role::text`

const joinedSelect = `SELECT ` + inquiryColumns + `, ` + creatorColumns + `
	FROM inquiries i
	LEFT JOIN users u ON u.id = i.created_by`

const insertInquiry = `INSERT INTO inquiries (
	id, created_by, name, email, contact_number, job_type,
	country, state, city, area, property_type, building_type, building_name,
	map_location, inspection_property_type, budget_range, project_urgency,
	special_requirements, preferred_inspection_date, alternative_inspection_date,
	status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
RETURNING ` + returningColumns

// buildListQuery renders the filter as SQL. It mirrors domain.ListFilter.Matches.
func buildListQuery(f domain.ListFilter) (string, []interface{}) {
	whereClauses := make([]string, 0, 8)
	args := make([]interface{}, 0, 8)
	argIdx := 1

	addEquals := func(column string, value interface{}) {
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}
	addILike := func(column string, value string) {
		whereClauses = append(whereClauses, fmt.Sprintf("%s ILIKE $%d", column, argIdx))
		args = append(args, likePattern(value))
		argIdx++
	}

	if f.CreatedBy != nil {
		addEquals("i.created_by", *f.CreatedBy)
	}
	if f.JobType != nil {
		addEquals("i.job_type", string(*f.JobType))
	}
	if f.PropertyType != nil {
		addEquals("i.property_type", string(*f.PropertyType))
	}
	if f.BuildingType != nil {
		addEquals("i.building_type", string(*f.BuildingType))
	}
	if f.InspectionPropertyType != nil {
		addEquals("i.inspection_property_type", string(*f.InspectionPropertyType))
	}
	if f.BudgetRange != nil {
		addEquals("i.budget_range", string(*f.BudgetRange))
	}
	if f.ProjectUrgency != nil {
		addEquals("i.project_urgency", string(*f.ProjectUrgency))
	}
	if f.Status != nil {
		addEquals("i.status", string(*f.Status))
	}
	if f.Country != "" {
		addILike("i.country", f.Country)
	}
	if f.State != "" {
		addILike("i.state", f.State)
	}
	if f.City != "" {
		addILike("i.city", f.City)
	}
	if f.Area != "" {
		addILike("i.area", f.Area)
	}
	if f.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(i.city ILIKE $%d OR i.area ILIKE $%d OR i.building_name ILIKE $%d OR i.special_requirements ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx,
		))
		args = append(args, likePattern(f.Search))
		argIdx++
	}
	if f.CreatedFrom != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("i.created_at >= $%d", argIdx))
		args = append(args, *f.CreatedFrom)
		argIdx++
	}
	if f.CreatedTo != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("i.created_at <= $%d", argIdx))
		args = append(args, *f.CreatedTo)
		argIdx++
	}

	var sb strings.Builder
	sb.WriteString(joinedSelect)
	if len(whereClauses) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(whereClauses, " AND "))
	}
	sb.WriteString("\n\tORDER BY i.created_at DESC, i.id DESC")
	if f.Limit > 0 {
		fmt.Fprintf(&sb, "\n\tLIMIT $%d", argIdx)
		args = append(args, f.Limit)
		argIdx++
	}
	if f.Offset > 0 {
		fmt.Fprintf(&sb, "\n\tOFFSET $%d", argIdx)
		args = append(args, f.Offset)
	}

	return sb.String(), args
}

// buildUpdate renders a patch as an UPDATE. updated_at never drops below
// created_at.
func buildUpdate(id uuid.UUID, p domain.Patch, now time.Time) (string, []interface{}) {
	setClauses := make([]string, 0, 20)
	args := make([]interface{}, 0, 20)
	argIdx := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	setString(set, "name", p.Name)
	setString(set, "email", p.Email)
	setString(set, "contact_number", p.ContactNumber)
	setEnum(set, "job_type", p.JobType)
	setString(set, "country", p.Country)
	setString(set, "state", p.State)
	setString(set, "city", p.City)
	setString(set, "area", p.Area)
	setEnum(set, "property_type", p.PropertyType)
	setEnum(set, "building_type", p.BuildingType)
	setString(set, "building_name", p.BuildingName)
	setString(set, "map_location", p.MapLocation)
	setEnum(set, "inspection_property_type", p.InspectionPropertyType)
	setEnum(set, "budget_range", p.BudgetRange)
	setEnum(set, "project_urgency", p.ProjectUrgency)
	setString(set, "special_requirements", p.SpecialRequirements)
	setTime(set, "preferred_inspection_date", p.PreferredInspectionDate)
	setTime(set, "alternative_inspection_date", p.AlternativeInspectionDate)
	setEnum(set, "status", p.Status)

	setClauses = append(setClauses, fmt.Sprintf("updated_at = GREATEST($%d, created_at)", argIdx))
	args = append(args, now)
	argIdx++

	query := fmt.Sprintf("UPDATE inquiries SET %s\n\tWHERE id = $%d\n\tRETURNING %s",
		strings.Join(setClauses, ", "), argIdx, returningColumns)
	args = append(args, id)
	return query, args
}

func setString(set func(string, interface{}), column string, o domain.Optional[string]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		set(column, nil)
		return
	}
	set(column, *o.Value)
}

func setEnum[T ~string](set func(string, interface{}), column string, o domain.Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		set(column, nil)
		return
	}
	set(column, string(*o.Value))
}

func setTime(set func(string, interface{}), column string, o domain.Optional[time.Time]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		set(column, nil)
		return
	}
	set(column, *o.Value)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches value as a literal substring.
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

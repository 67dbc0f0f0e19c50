package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated    = "created_at"
	orderByPrice      = "price"
	orderByYear       = "year"
	orderByKilometers = "kilometers"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated:    "created_at DESC",
	orderByPrice:      "price ASC",
	orderByYear:       "year DESC",
	orderByKilometers: "kilometers ASC",
}

const defaultOrderBy = "created_at DESC"

// searchColumns are matched case-insensitively by VehicleQuery.Search.
var searchColumns = []string{
	"vin", "make", "model", "trim", "year::text", "color",
	"body_type", "fuel_type", "drivetrain", "notes",
}

const baseVehiclesSelect = "SELECT " + vehicleColumns + "\nFROM vehicles"

const countVehiclesSelect = "SELECT COUNT(*) FROM vehicles"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a vehicle
// query. It returns the data query, the count query and the positional
// parameters they share.
func (q *VehicleQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	eq := func(expr string, v any) {
		conditions = append(conditions, fmt.Sprintf(expr, paramIdx))
		args = append(args, v)
		paramIdx++
	}

	if q.DealershipID != nil {
		eq("dealership_id = $%d", *q.DealershipID)
	}
	if q.Make != nil {
		eq("lower(make) = lower($%d)", *q.Make)
	}
	if q.Model != nil {
		eq("lower(model) = lower($%d)", *q.Model)
	}
	if q.Status != nil {
		eq("status = $%d", *q.Status)
	}
	if q.MinYear != nil {
		eq("year >= $%d", *q.MinYear)
	}
	if q.MaxYear != nil {
		eq("year <= $%d", *q.MaxYear)
	}

	if s := strings.TrimSpace(q.Search); s != "" {
		ors := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", col, paramIdx)
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
		args = append(args, "%"+s+"%")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.EffectiveLimit()
	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s, id ASC LIMIT %d OFFSET %d",
		baseVehiclesSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countVehiclesSelect + whereClause

	return dataSQL, countSQL, args
}

// EffectiveLimit returns the page size ToSQL will apply.
func (q *VehicleQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

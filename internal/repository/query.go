package repository

import (
	"strings"

	"property-service/internal/model"
)

const listingColumns = `id, name, region, address, transaction_type, price, price_value,
	lease_condition, exclusive_area, supply_area, area, area_value,
	lat, lng, key_money, maintenance_fee, parking, elevator,
	room_count, bathroom_count, purpose, total_floors, floor_number,
	building_direction, approval_date, move_in_date, type, images,
	created_at, updated_at, is_active`

// Newest first; id breaks ties between rows created in the same instant.
const listingOrder = ` ORDER BY created_at DESC, id DESC`

// queryBuilder collects AND-ed conditions with their bound values.
// Placeholders are written as "?" and rebound by sqlx for the driver.
type queryBuilder struct {
	conditions []string
	args       []any
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		conditions: []string{"is_active = TRUE"},
	}
}

func (qb *queryBuilder) addCondition(condition string, arg any) {
	qb.conditions = append(qb.conditions, condition)
	qb.args = append(qb.args, arg)
}

func (qb *queryBuilder) addEqual(column string, v *string) {
	if v != nil {
		qb.addCondition(column+" = ?", *v)
	}
}

func (qb *queryBuilder) addRange(column string, min, max *float64) {
	if min != nil {
		qb.addCondition(column+" >= ?", *min)
	}
	if max != nil {
		qb.addCondition(column+" <= ?", *max)
	}
}

func (qb *queryBuilder) where() string {
	return " WHERE " + strings.Join(qb.conditions, " AND ")
}

// BuildSearchQuery turns a filter into a SELECT over active listings and
// the values to bind, in placeholder order.
func BuildSearchQuery(f model.ListingFilter) (string, []any) {
	qb := newQueryBuilder()

	qb.addEqual("transaction_type", f.TransactionType)
	qb.addEqual("type", f.Type)
	qb.addEqual("region", f.Region)
	qb.addRange("price_value", f.MinPrice, f.MaxPrice)
	qb.addRange("area_value", f.MinArea, f.MaxArea)

	return "SELECT " + listingColumns + " FROM properties" + qb.where() + listingOrder, qb.args
}

package model

import "time"

// DefaultPropertyType is stored when a listing arrives without a type.
const DefaultPropertyType = "상가"

// Listing is a row of the properties table.
type Listing struct {
	ID                int64     `db:"id"`
	Name              *string   `db:"name"`
	Region            *string   `db:"region"`
	Address           *string   `db:"address"`
	TransactionType   *string   `db:"transaction_type"` // 매매/전세/월세
	Price             *string   `db:"price"`
	PriceValue        *float64  `db:"price_value"`
	LeaseCondition    *string   `db:"lease_condition"`
	ExclusiveArea     *string   `db:"exclusive_area"`
	SupplyArea        *string   `db:"supply_area"`
	Area              *string   `db:"area"`
	AreaValue         *float64  `db:"area_value"`
	Lat               *float64  `db:"lat"`
	Lng               *float64  `db:"lng"`
	KeyMoney          *float64  `db:"key_money"`
	MaintenanceFee    *float64  `db:"maintenance_fee"`
	Parking           *bool     `db:"parking"`
	Elevator          *bool     `db:"elevator"`
	RoomCount         *int      `db:"room_count"`
	BathroomCount     *int      `db:"bathroom_count"`
	Purpose           *string   `db:"purpose"`
	TotalFloors       *int      `db:"total_floors"`
	FloorNumber       *int      `db:"floor_number"`
	BuildingDirection *string   `db:"building_direction"`
	ApprovalDate      *string   `db:"approval_date"`
	MoveInDate        *string   `db:"move_in_date"`
	Type              string    `db:"type"`
	Images            *string   `db:"images"` // JSON array text
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	IsActive          bool      `db:"is_active"`
}

// ListingInput is the full field set accepted by create and update.
// Field names follow the table columns.
type ListingInput struct {
	Name              *string  `json:"name"`
	Region            *string  `json:"region"`
	Address           *string  `json:"address"`
	TransactionType   *string  `json:"transaction_type"`
	Price             *string  `json:"price"`
	PriceValue        *float64 `json:"price_value" binding:"omitempty,gte=0"`
	LeaseCondition    *string  `json:"lease_condition"`
	ExclusiveArea     *string  `json:"exclusive_area"`
	SupplyArea        *string  `json:"supply_area"`
	Area              *string  `json:"area"`
	AreaValue         *float64 `json:"area_value" binding:"omitempty,gte=0"`
	Lat               *float64 `json:"lat"`
	Lng               *float64 `json:"lng"`
	KeyMoney          *float64 `json:"key_money"`
	MaintenanceFee    *float64 `json:"maintenance_fee"`
	Parking           *bool    `json:"parking"`
	Elevator          *bool    `json:"elevator"`
	RoomCount         *int     `json:"room_count"`
	BathroomCount     *int     `json:"bathroom_count"`
	Purpose           *string  `json:"purpose"`
	TotalFloors       *int     `json:"total_floors"`
	FloorNumber       *int     `json:"floor_number"`
	BuildingDirection *string  `json:"building_direction"`
	ApprovalDate      *string  `json:"approval_date"`
	MoveInDate        *string  `json:"move_in_date"`
	Type              *string  `json:"type"`
	Images            []string `json:"images"`
}

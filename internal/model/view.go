package model

import "time"

// ListingView is the client-facing shape of a listing.
type ListingView struct {
	ID                int64     `json:"id"`
	Name              *string   `json:"name"`
	Region            *string   `json:"region"`
	Address           *string   `json:"address"`
	TransactionType   *string   `json:"transactionType"`
	Price             *string   `json:"price"`
	PriceValue        *float64  `json:"priceValue"`
	LeaseCondition    *string   `json:"leaseCondition"`
	ExclusiveArea     *string   `json:"exclusiveArea"`
	SupplyArea        *string   `json:"supplyArea"`
	Area              *string   `json:"area"`
	AreaValue         *float64  `json:"areaValue"`
	Lat               *float64  `json:"lat"`
	Lng               *float64  `json:"lng"`
	KeyMoney          *float64  `json:"keyMoney"`
	MaintenanceFee    *float64  `json:"maintenanceFee"`
	Parking           *bool     `json:"parking"`
	Elevator          *bool     `json:"elevator"`
	RoomCount         *int      `json:"roomCount"`
	BathroomCount     *int      `json:"bathroomCount"`
	Purpose           *string   `json:"purpose"`
	TotalFloors       *int      `json:"totalFloors"`
	FloorNumber       *int      `json:"floorNumber"`
	BuildingDirection *string   `json:"buildingDirection"`
	ApprovalDate      *string   `json:"approvalDate"`
	MoveInDate        *string   `json:"moveInDate"`
	Type              string    `json:"type"`
	Images            []string  `json:"images"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

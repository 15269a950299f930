package service

import (
	"encoding/json"

	"property-service/internal/model"
)

// NormalizeListing converts a stored row into its client-facing view.
// Unreadable images never fail the read; they come back as an empty list.
func NormalizeListing(l model.Listing) model.ListingView {
	return model.ListingView{
		ID:                l.ID,
		Name:              l.Name,
		Region:            l.Region,
		Address:           l.Address,
		TransactionType:   l.TransactionType,
		Price:             l.Price,
		PriceValue:        l.PriceValue,
		LeaseCondition:    l.LeaseCondition,
		ExclusiveArea:     l.ExclusiveArea,
		SupplyArea:        l.SupplyArea,
		Area:              l.Area,
		AreaValue:         l.AreaValue,
		Lat:               l.Lat,
		Lng:               l.Lng,
		KeyMoney:          l.KeyMoney,
		MaintenanceFee:    l.MaintenanceFee,
		Parking:           l.Parking,
		Elevator:          l.Elevator,
		RoomCount:         l.RoomCount,
		BathroomCount:     l.BathroomCount,
		Purpose:           l.Purpose,
		TotalFloors:       l.TotalFloors,
		FloorNumber:       l.FloorNumber,
		BuildingDirection: l.BuildingDirection,
		ApprovalDate:      l.ApprovalDate,
		MoveInDate:        l.MoveInDate,
		Type:              l.Type,
		Images:            decodeImages(l.Images),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// NormalizeListings applies NormalizeListing to every row. The result is
// never nil so it always encodes as a JSON array.
func NormalizeListings(rows []model.Listing) []model.ListingView {
	out := make([]model.ListingView, 0, len(rows))
	for _, l := range rows {
		out = append(out, NormalizeListing(l))
	}
	return out
}

func decodeImages(raw *string) []string {
	images := []string{}
	if raw == nil || *raw == "" {
		return images
	}
	var decoded []string
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil || decoded == nil {
		return images
	}
	return decoded
}

// encodeImages is the inverse of decodeImages. Nil and empty lists are
// stored as NULL.
func encodeImages(images []string) (*string, error) {
	if len(images) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

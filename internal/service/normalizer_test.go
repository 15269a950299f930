package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"property-service/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeListingRenamesAndPassesThrough(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	row := model.Listing{
		ID:                7,
		Name:              ptr("해운대 상가"),
		Region:            ptr("Busan"),
		TransactionType:   ptr("월세"),
		Price:             ptr("1000/50"),
		PriceValue:        ptr(50.0),
		AreaValue:         ptr(33.3),
		KeyMoney:          ptr(2000.0),
		Parking:           ptr(false),
		RoomCount:         ptr(3),
		FloorNumber:       ptr(1),
		BuildingDirection: ptr("남향"),
		MoveInDate:        ptr("즉시"),
		Type:              "상가",
		Images:            ptr(`["a.jpg","b.jpg"]`),
		CreatedAt:         created,
		UpdatedAt:         created.Add(time.Hour),
		IsActive:          true,
	}

	view := NormalizeListing(row)

	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, row.Name, view.Name)
	assert.Equal(t, row.TransactionType, view.TransactionType)
	assert.Equal(t, row.PriceValue, view.PriceValue)
	assert.Equal(t, row.AreaValue, view.AreaValue)
	assert.Equal(t, row.KeyMoney, view.KeyMoney)
	assert.Equal(t, row.Parking, view.Parking)
	assert.Equal(t, row.RoomCount, view.RoomCount)
	assert.Equal(t, row.BuildingDirection, view.BuildingDirection)
	assert.Equal(t, row.MoveInDate, view.MoveInDate)
	assert.Nil(t, view.Lat)
	assert.Equal(t, "상가", view.Type)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.Images)
	assert.Equal(t, created, view.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), view.UpdatedAt)
}

func TestNormalizeListingImagesAreLenient(t *testing.T) {
	cases := map[string]*string{
		"null column":  nil,
		"empty string": ptr(""),
		"not json":     ptr("[a.jpg"),
		"json null":    ptr("null"),
		"json object":  ptr(`{"url":"a.jpg"}`),
		"mixed array":  ptr(`["a.jpg", 3]`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var view model.ListingView
			require.NotPanics(t, func() {
				view = NormalizeListing(model.Listing{Images: raw})
			})
			assert.NotNil(t, view.Images)
			assert.Empty(t, view.Images)
		})
	}
}

func TestImagesRoundTripKeepsOrder(t *testing.T) {
	images := []string{
		"https://cdn.example.com/properties/3-c.jpg",
		"https://cdn.example.com/properties/1-a.jpg",
		"https://cdn.example.com/properties/2-b.jpg",
	}
	raw, err := encodeImages(images)
	require.NoError(t, err)
	require.NotNil(t, raw)

	assert.Equal(t, images, NormalizeListing(model.Listing{Images: raw}).Images)
}

func TestEncodeImagesEmptyIsNull(t *testing.T) {
	raw, err := encodeImages(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = encodeImages([]string{})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestNormalizeListingsNeverNil(t *testing.T) {
	views := NormalizeListings(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

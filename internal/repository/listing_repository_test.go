package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"property-service/internal/model"
	"property-service/internal/repository"
	"property-service/internal/testdb"
)

func ptr[T any](v T) *T { return &v }

// steppingClock advances one minute per call so every write gets a
// distinct, increasing timestamp.
func steppingClock() func() time.Time {
	t := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newRepo(t *testing.T) *repository.ListingRepository {
	t.Helper()
	return repository.NewListingRepository(testdb.New(t)).WithClock(steppingClock())
}

func seed(t *testing.T, repo *repository.ListingRepository, in model.ListingInput) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), in, "상가", nil)
	require.NoError(t, err)
	return id
}

func ids(list []model.Listing) []int64 {
	out := make([]int64, 0, len(list))
	for _, l := range list {
		out = append(out, l.ID)
	}
	return out
}

func TestSearchPriceRangeWithinRegion(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	prices := []float64{50, 150, 300, 500, 600}
	regions := []string{"Busan", "Busan", "Seoul", "Busan", "Busan"}
	created := make([]int64, len(prices))
	for i := range prices {
		created[i] = seed(t, repo, model.ListingInput{
			Region:     ptr(regions[i]),
			PriceValue: ptr(prices[i]),
		})
	}

	got, err := repo.Search(ctx, model.ListingFilter{
		MinPrice: ptr(100.0),
		MaxPrice: ptr(500.0),
		Region:   ptr("Busan"),
	})
	require.NoError(t, err)

	// newest first: 500 was created after 150
	assert.Equal(t, []int64{created[3], created[1]}, ids(got))
	assert.Equal(t, 500.0, *got[0].PriceValue)
	assert.Equal(t, 150.0, *got[1].PriceValue)
}

func TestSearchEmptyFilterReturnsAllActiveNewestFirst(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	a := seed(t, repo, model.ListingInput{Name: ptr("a")})
	b := seed(t, repo, model.ListingInput{Name: ptr("b")})
	c := seed(t, repo, model.ListingInput{Name: ptr("c")})

	_, err := repo.SoftDelete(ctx, b)
	require.NoError(t, err)

	got, err := repo.Search(ctx, model.ListingFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{c, a}, ids(got))
}

func TestSearchScalarAndAreaFilters(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	sale := seed(t, repo, model.ListingInput{TransactionType: ptr("매매"), AreaValue: ptr(33.0)})
	seed(t, repo, model.ListingInput{TransactionType: ptr("월세"), AreaValue: ptr(33.0)})
	seed(t, repo, model.ListingInput{TransactionType: ptr("매매"), AreaValue: ptr(120.0)})
	noArea := seed(t, repo, model.ListingInput{TransactionType: ptr("매매")})

	got, err := repo.Search(ctx, model.ListingFilter{
		TransactionType: ptr("매매"),
		MaxArea:         ptr(50.0),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{sale}, ids(got))

	got, err = repo.Search(ctx, model.ListingFilter{TransactionType: ptr("매매")})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, noArea, got[0].ID)
}

func TestSearchZeroBoundIsApplied(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	free := seed(t, repo, model.ListingInput{PriceValue: ptr(0.0)})
	seed(t, repo, model.ListingInput{PriceValue: ptr(10.0)})

	got, err := repo.Search(ctx, model.ListingFilter{MaxPrice: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, []int64{free}, ids(got))
}

func TestListByRegionMatchesSearch(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	seed(t, repo, model.ListingInput{Region: ptr("Seoul")})
	seed(t, repo, model.ListingInput{Region: ptr("Busan")})
	seed(t, repo, model.ListingInput{Region: ptr("Seoul")})

	byRegion, err := repo.ListByRegion(ctx, "Seoul")
	require.NoError(t, err)
	searched, err := repo.Search(ctx, model.ListingFilter{Region: ptr("Seoul")})
	require.NoError(t, err)

	assert.Len(t, byRegion, 2)
	assert.Equal(t, ids(searched), ids(byRegion))
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	images := `["https://img/1.jpg"]`
	id, err := repo.Create(ctx, model.ListingInput{
		Name:      ptr("역세권 상가"),
		Parking:   ptr(true),
		RoomCount: ptr(2),
		Lat:       ptr(35.1),
	}, "사무실", &images)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "역세권 상가", *got.Name)
	assert.Equal(t, "사무실", got.Type)
	assert.True(t, *got.Parking)
	assert.Nil(t, got.Elevator)
	assert.Equal(t, 2, *got.RoomCount)
	assert.Equal(t, 35.1, *got.Lat)
	assert.Equal(t, images, *got.Images)
	assert.True(t, got.IsActive)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestGetByIDMissing(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateOverwritesAndRefreshesTimestamp(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	id := seed(t, repo, model.ListingInput{Name: ptr("old"), Purpose: ptr("카페")})
	before, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	changes, err := repo.Update(ctx, id, model.ListingInput{Name: ptr("new"), PriceValue: ptr(42.0)}, "상가", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	after, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", *after.Name)
	assert.Equal(t, 42.0, *after.PriceValue)
	assert.Nil(t, after.Purpose, "full overwrite clears omitted fields")
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateMissingDoesNotCreate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	changes, err := repo.Update(ctx, 99, model.ListingInput{Name: ptr("ghost")}, "상가", nil)
	require.NoError(t, err)
	assert.Zero(t, changes)

	all, err := repo.Search(ctx, model.ListingFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSoftDeleteKeepsRow(t *testing.T) {
	db := testdb.New(t)
	repo := repository.NewListingRepository(db).WithClock(steppingClock())
	ctx := context.Background()

	id := seed(t, repo, model.ListingInput{Name: ptr("gone")})

	changes, err := repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changes)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var active bool
	require.NoError(t, db.Get(&active, `SELECT is_active FROM properties WHERE id = ?`, id))
	assert.False(t, active)

	changes, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, changes, "already inactive")

	changes, err = repo.Update(ctx, id, model.ListingInput{}, "상가", nil)
	require.NoError(t, err)
	assert.Zero(t, changes, "inactive rows are not updated")
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"property-service/internal/model"
)

var ErrNotFound = errors.New("not found")

type ListingRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db, now: time.Now}
}

// WithClock replaces the timestamp source used for created_at/updated_at.
func (r *ListingRepository) WithClock(now func() time.Time) *ListingRepository {
	r.now = now
	return r
}

func (r *ListingRepository) timestamp() time.Time {
	return r.now().UTC()
}

// Search returns active listings matching the filter, newest first.
func (r *ListingRepository) Search(ctx context.Context, f model.ListingFilter) ([]model.Listing, error) {
	query, args := BuildSearchQuery(f)

	var list []model.Listing
	if err := r.db.SelectContext(ctx, &list, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("ListingRepository.Search: %w", err)
	}
	return list, nil
}

// ListByRegion returns active listings in one region, newest first.
func (r *ListingRepository) ListByRegion(ctx context.Context, region string) ([]model.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM properties
		WHERE region = ? AND is_active = TRUE` + listingOrder

	var list []model.Listing
	if err := r.db.SelectContext(ctx, &list, r.db.Rebind(query), region); err != nil {
		return nil, fmt.Errorf("ListingRepository.ListByRegion: %w", err)
	}
	return list, nil
}

// GetByID returns an active listing or ErrNotFound.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM properties WHERE id = ? AND is_active = TRUE`

	var l model.Listing
	err := r.db.GetContext(ctx, &l, r.db.Rebind(query), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetByID: %w", err)
	}
	return &l, nil
}

// Create inserts an active listing and returns its generated id.
// images is the already serialized JSON array, or nil.
func (r *ListingRepository) Create(ctx context.Context, in model.ListingInput, typ string, images *string) (int64, error) {
	const insertQuery = `
		INSERT INTO properties (
			name, region, address, transaction_type, price, price_value,
			lease_condition, exclusive_area, supply_area, area, area_value,
			lat, lng, key_money, maintenance_fee, parking, elevator,
			room_count, bathroom_count, purpose, total_floors, floor_number,
			building_direction, approval_date, move_in_date, type, images,
			created_at, updated_at, is_active
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE)
		RETURNING id
	`
	now := r.timestamp()
	args := append(fieldArgs(in, typ, images), now, now)

	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertQuery), args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("ListingRepository.Create: %w", err)
	}
	return id, nil
}

// Update overwrites every field of an active listing and reports the
// number of rows changed. Zero means no active listing has that id.
func (r *ListingRepository) Update(ctx context.Context, id int64, in model.ListingInput, typ string, images *string) (int64, error) {
	const updateQuery = `
		UPDATE properties SET
			name = ?, region = ?, address = ?, transaction_type = ?, price = ?, price_value = ?,
			lease_condition = ?, exclusive_area = ?, supply_area = ?, area = ?, area_value = ?,
			lat = ?, lng = ?, key_money = ?, maintenance_fee = ?, parking = ?, elevator = ?,
			room_count = ?, bathroom_count = ?, purpose = ?, total_floors = ?, floor_number = ?,
			building_direction = ?, approval_date = ?, move_in_date = ?, type = ?, images = ?,
			updated_at = ?
		WHERE id = ? AND is_active = TRUE
	`
	args := append(fieldArgs(in, typ, images), r.timestamp(), id)

	res, err := r.db.ExecContext(ctx, r.db.Rebind(updateQuery), args...)
	if err != nil {
		return 0, fmt.Errorf("ListingRepository.Update: %w", err)
	}
	return rowsAffected(res, "ListingRepository.Update")
}

// SoftDelete marks an active listing inactive. The row is kept.
func (r *ListingRepository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	const deleteQuery = `
		UPDATE properties SET is_active = FALSE, updated_at = ?
		WHERE id = ? AND is_active = TRUE
	`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(deleteQuery), r.timestamp(), id)
	if err != nil {
		return 0, fmt.Errorf("ListingRepository.SoftDelete: %w", err)
	}
	return rowsAffected(res, "ListingRepository.SoftDelete")
}

// Ping checks that the database is reachable.
func (r *ListingRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func fieldArgs(in model.ListingInput, typ string, images *string) []any {
	return []any{
		in.Name, in.Region, in.Address, in.TransactionType, in.Price, in.PriceValue,
		in.LeaseCondition, in.ExclusiveArea, in.SupplyArea, in.Area, in.AreaValue,
		in.Lat, in.Lng, in.KeyMoney, in.MaintenanceFee, in.Parking, in.Elevator,
		in.RoomCount, in.BathroomCount, in.Purpose, in.TotalFloors, in.FloorNumber,
		in.BuildingDirection, in.ApprovalDate, in.MoveInDate, typ, images,
	}
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", op, err)
	}
	return n, nil
}

package location

import (
	"Dining-Menu-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		// WithTx returns a repository bound to an open transaction, so location
		// writes can join a menu ingestion's transaction scope.
		WithTx(tx *gorm.DB) LocationRepository

		Create(ctx context.Context, location *entities.Location) error
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Location, error)
		FindByName(ctx context.Context, name string) ([]*entities.Location, error)
		FindByIdentity(ctx context.Context, name string, lat, lng float64) (*entities.Location, error)
		FindAll(ctx context.Context) ([]*entities.Location, error)
		FindWithinRadius(ctx context.Context, lat, lng, radiusKm float64) ([]*entities.Location, error)
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) WithTx(tx *gorm.DB) LocationRepository {
	if tx == nil {
		return r
	}
	return &locationRepository{db: tx}
}

func (r *locationRepository) Create(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// FindByName returns all locations carrying the exact name, oldest first so
// proximity ties resolve to the same row on every call.
func (r *locationRepository) FindByName(ctx context.Context, name string) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("created_at ASC, id ASC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByIdentity(ctx context.Context, name string, lat, lng float64) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).
		Where("name = ? AND latitude = ? AND longitude = ?", name, lat, lng).
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) FindAll(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindWithinRadius shortlists locations of any name near a point using the
// earthdistance extension. The earth_box bound is approximate; callers must
// re-verify each candidate with the exact haversine distance before using it.
func (r *locationRepository) FindWithinRadius(ctx context.Context, lat, lng, radiusKm float64) ([]*entities.Location, error) {
	var locations []*entities.Location

	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM locations
		WHERE earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		ORDER BY distance ASC
	`

	radiusMeters := radiusKm * 1000

	if err := r.db.WithContext(ctx).Raw(query, lat, lng, lat, lng, radiusMeters).Scan(&locations).Error; err != nil {
		return nil, err
	}

	return locations, nil
}

// IsNotFound reports whether err is gorm's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package location

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/entities"
	"Dining-Menu-Backend/internal/utils"
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LocationService interface {
		// ResolveLocation returns the id of the canonical location for the given
		// name and coordinates, creating a new row when no same-named location
		// lies within DuplicateThresholdKm.
		ResolveLocation(ctx context.Context, req domain.ResolveLocationRequest) (uuid.UUID, error)
		// ResolveLocationTx is ResolveLocation joined to an open transaction, so
		// menu ingestion can roll the location back with everything else.
		ResolveLocationTx(ctx context.Context, tx *gorm.DB, req domain.ResolveLocationRequest) (uuid.UUID, error)

		FindNearestLocationsByName(ctx context.Context, name string, lat, lng, maxDistanceKm float64) ([]domain.NearbyLocationResponse, error)
		FindAllLocationsNear(ctx context.Context, lat, lng, maxDistanceKm float64) ([]domain.NearbyLocationResponse, error)

		GetLocationByName(ctx context.Context, name string) (domain.LocationResponse, error)
		GetAllLocations(ctx context.Context) ([]domain.LocationResponse, error)
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

// ValidateCoordinates rejects out-of-range latitude/longitude before any lookup.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return domain.ErrLatitudeOutOfRange
	}
	if lng < -180 || lng > 180 {
		return domain.ErrLongitudeOutOfRange
	}
	return nil
}

func (s *locationService) ResolveLocation(ctx context.Context, req domain.ResolveLocationRequest) (uuid.UUID, error) {
	return s.ResolveLocationTx(ctx, nil, req)
}

func (s *locationService) ResolveLocationTx(ctx context.Context, tx *gorm.DB, req domain.ResolveLocationRequest) (uuid.UUID, error) {
	if req.Name == "" {
		return uuid.Nil, domain.ErrEmptyLocationName
	}
	if err := ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return uuid.Nil, err
	}

	repo := s.locationRepository.WithTx(tx)

	candidates, err := repo.FindByName(ctx, req.Name)
	if err != nil {
		return uuid.Nil, err
	}
	for _, candidate := range candidates {
		if Haversine(candidate.Latitude, candidate.Longitude, req.Latitude, req.Longitude) < DuplicateThresholdKm {
			return candidate.ID, nil
		}
	}

	created := &entities.Location{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if err := repo.Create(ctx, created); err != nil {
		if utils.IsUniqueViolation(err) {
			// Lost the create race on the identical tuple: re-read the winner.
			winner, findErr := repo.FindByIdentity(ctx, req.Name, req.Latitude, req.Longitude)
			if findErr != nil {
				return uuid.Nil, err
			}
			return winner.ID, nil
		}
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (s *locationService) FindNearestLocationsByName(ctx context.Context, name string, lat, lng, maxDistanceKm float64) ([]domain.NearbyLocationResponse, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	candidates, err := s.locationRepository.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return nearbyResponses(candidates, lat, lng, maxDistanceKm), nil
}

func (s *locationService) FindAllLocationsNear(ctx context.Context, lat, lng, maxDistanceKm float64) ([]domain.NearbyLocationResponse, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	// The earth_box shortlist is planar-ish and not equivalent to true
	// great-circle distance, so every candidate is re-checked with haversine.
	candidates, err := s.locationRepository.FindWithinRadius(ctx, lat, lng, maxDistanceKm)
	if err != nil {
		return nil, err
	}
	return nearbyResponses(candidates, lat, lng, maxDistanceKm), nil
}

func nearbyResponses(candidates []*entities.Location, lat, lng, maxDistanceKm float64) []domain.NearbyLocationResponse {
	nearby := make([]domain.NearbyLocationResponse, 0, len(candidates))
	for _, candidate := range candidates {
		distance := Haversine(candidate.Latitude, candidate.Longitude, lat, lng)
		if distance > maxDistanceKm {
			continue
		}
		nearby = append(nearby, domain.NearbyLocationResponse{
			LocationResponse: locationResponse(candidate),
			DistanceKm:       distance,
		})
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby
}

func (s *locationService) GetLocationByName(ctx context.Context, name string) (domain.LocationResponse, error) {
	locations, err := s.locationRepository.FindByName(ctx, name)
	if err != nil {
		return domain.LocationResponse{}, err
	}
	if len(locations) == 0 {
		return domain.LocationResponse{}, domain.ErrLocationNotFound
	}
	return locationResponse(locations[0]), nil
}

func (s *locationService) GetAllLocations(ctx context.Context) ([]domain.LocationResponse, error) {
	locations, err := s.locationRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, locationResponse(l))
	}
	return responses, nil
}

func locationResponse(l *entities.Location) domain.LocationResponse {
	return domain.LocationResponse{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
	}
}

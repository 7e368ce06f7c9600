package menu

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/entities"
	"Dining-Menu-Backend/internal/utils"
	"Dining-Menu-Backend/pkg/location"
	"Dining-Menu-Backend/pkg/nutrition"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		// IngestMenu writes one menu with its foods, nutrient profiles,
		// embeddings and links in a single transaction. A failure at any step
		// rolls everything back; no partial menu is ever visible.
		IngestMenu(ctx context.Context, req domain.IngestMenuRequest) (string, error)

		// MenuExists reports whether a stored menu at the named location
		// time-overlaps [start, end], boundaries included.
		MenuExists(ctx context.Context, locationName string, start, end time.Time) (bool, error)
		// RecordExists is MenuExists keyed by an unsaved record's own fields.
		RecordExists(ctx context.Context, req domain.IngestMenuRequest) (bool, error)

		GetMenusByLocationAndWindow(ctx context.Context, locationName string, start, end time.Time) ([]domain.MenuSummaryResponse, error)
		GetMenusWithFoods(ctx context.Context, locationName string, start, end time.Time) ([]domain.MenuWithFoodsResponse, error)
		GetMenusNear(ctx context.Context, lat, lng float64, start, end time.Time, maxDistanceKm float64) ([]domain.MenuNearbyResponse, error)

		GetInformationSourceByName(ctx context.Context, name string) (*entities.InformationSource, error)
		GetAllInformationSources(ctx context.Context) ([]*entities.InformationSource, error)
	}

	menuService struct {
		menuRepository     MenuRepository
		locationRepository location.LocationRepository
		locationService    location.LocationService
	}
)

func NewMenuService(
	menuRepository MenuRepository,
	locationRepository location.LocationRepository,
	locationService location.LocationService,
) MenuService {
	return &menuService{
		menuRepository:     menuRepository,
		locationRepository: locationRepository,
		locationService:    locationService,
	}
}

func (s *menuService) IngestMenu(ctx context.Context, req domain.IngestMenuRequest) (string, error) {
	start, end, err := validateMenuRecord(req)
	if err != nil {
		return "", err
	}

	menuID, err := s.ingestOnce(ctx, req, start, end)
	if utils.IsUniqueViolation(err) {
		// A concurrent ingestion won a location or information-source create
		// race and aborted our transaction. The winning row is committed now,
		// so one retry resolves to it instead of inserting.
		menuID, err = s.ingestOnce(ctx, req, start, end)
	}
	if err != nil {
		return "", err
	}
	return menuID.String(), nil
}

func (s *menuService) ingestOnce(ctx context.Context, req domain.IngestMenuRequest, start, end time.Time) (uuid.UUID, error) {
	var menuID uuid.UUID

	err := s.menuRepository.Transaction(ctx, func(tx *gorm.DB) error {
		repo := s.menuRepository.WithTx(tx)

		locationID, err := s.resolveMenuLocation(ctx, tx, req.Location)
		if err != nil {
			return fmt.Errorf("resolve location: %w", err)
		}

		foodIDs := make([]uuid.UUID, 0, len(req.Foods))
		for i, f := range req.Foods {
			foodID, err := s.insertFood(ctx, repo, f)
			if err != nil {
				return fmt.Errorf("food %d (%q): %w", i, f.Name, err)
			}
			foodIDs = append(foodIDs, foodID)
		}

		m := &entities.Menu{
			ID:         uuid.New(),
			Name:       req.Name,
			LocationID: locationID,
			StartTime:  start,
			EndTime:    end,
		}
		if err := repo.CreateMenu(ctx, m); err != nil {
			return fmt.Errorf("create menu: %w", err)
		}

		for i, foodID := range foodIDs {
			if err := repo.LinkFoodToMenu(ctx, m.ID, foodID); err != nil {
				return fmt.Errorf("link food %d (%q): %w", i, req.Foods[i].Name, err)
			}
		}

		menuID = m.ID
		return nil
	})

	return menuID, err
}

func (s *menuService) resolveMenuLocation(ctx context.Context, tx *gorm.DB, loc domain.MenuLocation) (uuid.UUID, error) {
	if loc.Embedded {
		return s.locationService.ResolveLocationTx(ctx, tx, domain.ResolveLocationRequest{
			Name:        loc.Name,
			Description: loc.Description,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
		})
	}

	// Lookup-only path: a bare name must already be stored.
	existing, err := s.locationRepository.WithTx(tx).FindByName(ctx, loc.Name)
	if err != nil {
		return uuid.Nil, err
	}
	if len(existing) == 0 {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, loc.Name)
	}
	return existing[0].ID, nil
}

func (s *menuService) insertFood(ctx context.Context, repo MenuRepository, f domain.FoodPayload) (uuid.UUID, error) {
	sourceID, err := s.resolveInformationSource(ctx, repo, f.MacroInformationSource)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve information source: %w", err)
	}

	profile := nutrition.Profile(f.Macros)
	profile.ID = uuid.New()
	if err := repo.CreateNutrientProfile(ctx, profile); err != nil {
		return uuid.Nil, fmt.Errorf("create nutrient profile: %w", err)
	}

	food := &entities.Food{
		ID:                           uuid.New(),
		Name:                         f.Name,
		Brand:                        f.Brand,
		ServingSize:                  f.ServingSize,
		MacroPercentageErrorEstimate: f.MacroPercentageErrorEstimate,
		InformationSourceID:          sourceID,
		NutrientProfileID:            profile.ID,
		MacroEmbedding:               nutrition.Encode(f.Macros),
	}
	if err := repo.CreateFood(ctx, food); err != nil {
		return uuid.Nil, fmt.Errorf("create food: %w", err)
	}

	units := make([]*entities.ServingUnit, 0, len(f.ServingUnits))
	for _, u := range f.ServingUnits {
		units = append(units, &entities.ServingUnit{
			ID:     uuid.New(),
			FoodID: food.ID,
			Name:   u.Name,
			Grams:  u.Grams,
		})
	}
	if err := repo.CreateServingUnits(ctx, units); err != nil {
		return uuid.Nil, fmt.Errorf("create serving units: %w", err)
	}

	return food.ID, nil
}

// resolveInformationSource is first-writer-wins: once a name exists its row is
// never updated, later descriptions are discarded.
func (s *menuService) resolveInformationSource(ctx context.Context, repo MenuRepository, name string) (uuid.UUID, error) {
	existing, err := repo.FindInformationSourceByName(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	source := &entities.InformationSource{
		ID:                         uuid.New(),
		Name:                       name,
		Description:                fmt.Sprintf("Macro information source: %s", name),
		ErrorConfidenceDescription: "No specific confidence information provided",
	}
	if err := repo.CreateInformationSource(ctx, source); err != nil {
		if utils.IsUniqueViolation(err) {
			winner, findErr := repo.FindInformationSourceByName(ctx, name)
			if findErr != nil {
				return uuid.Nil, err
			}
			return winner.ID, nil
		}
		return uuid.Nil, err
	}
	return source.ID, nil
}

func (s *menuService) MenuExists(ctx context.Context, locationName string, start, end time.Time) (bool, error) {
	return s.menuRepository.MenuExistsInWindow(ctx, locationName, start, end)
}

func (s *menuService) RecordExists(ctx context.Context, req domain.IngestMenuRequest) (bool, error) {
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return false, err
	}
	return s.menuRepository.MenuExistsInWindow(ctx, req.Location.Name, start, end)
}

func (s *menuService) GetMenusByLocationAndWindow(ctx context.Context, locationName string, start, end time.Time) ([]domain.MenuSummaryResponse, error) {
	menus, err := s.menuRepository.FindMenusInWindow(ctx, locationName, start, end)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.MenuSummaryResponse, 0, len(menus))
	for _, m := range menus {
		summaries = append(summaries, menuSummary(m))
	}
	return summaries, nil
}

func (s *menuService) GetMenusWithFoods(ctx context.Context, locationName string, start, end time.Time) ([]domain.MenuWithFoodsResponse, error) {
	menus, err := s.menuRepository.FindMenusWithFoodsInWindow(ctx, locationName, start, end)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.MenuWithFoodsResponse, 0, len(menus))
	for _, m := range menus {
		responses = append(responses, menuWithFoods(m))
	}
	return responses, nil
}

func (s *menuService) GetMenusNear(ctx context.Context, lat, lng float64, start, end time.Time, maxDistanceKm float64) ([]domain.MenuNearbyResponse, error) {
	nearby, err := s.locationService.FindAllLocationsNear(ctx, lat, lng, maxDistanceKm)
	if err != nil {
		return nil, err
	}
	if len(nearby) == 0 {
		return []domain.MenuNearbyResponse{}, nil
	}

	locationIDs := make([]uuid.UUID, 0, len(nearby))
	distanceByID := make(map[uuid.UUID]float64, len(nearby))
	for _, l := range nearby {
		id, err := uuid.Parse(l.ID)
		if err != nil {
			return nil, err
		}
		locationIDs = append(locationIDs, id)
		distanceByID[id] = l.DistanceKm
	}

	menus, err := s.menuRepository.FindMenusWithFoodsByLocationIDs(ctx, locationIDs, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MenuNearbyResponse, 0, len(menus))
	for _, m := range menus {
		responses = append(responses, domain.MenuNearbyResponse{
			MenuWithFoodsResponse: menuWithFoods(m),
			DistanceKm:            distanceByID[m.LocationID],
		})
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].DistanceKm < responses[j].DistanceKm
	})
	return responses, nil
}

func (s *menuService) GetInformationSourceByName(ctx context.Context, name string) (*entities.InformationSource, error) {
	return s.menuRepository.FindInformationSourceByName(ctx, name)
}

func (s *menuService) GetAllInformationSources(ctx context.Context) ([]*entities.InformationSource, error) {
	return s.menuRepository.FindAllInformationSources(ctx)
}

func menuSummary(m *entities.Menu) domain.MenuSummaryResponse {
	summary := domain.MenuSummaryResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		StartTime: m.StartTime.Format(time.RFC3339),
		EndTime:   m.EndTime.Format(time.RFC3339),
	}
	if m.Location != nil {
		summary.LocationName = m.Location.Name
	}
	return summary
}

func menuWithFoods(m *entities.Menu) domain.MenuWithFoodsResponse {
	response := domain.MenuWithFoodsResponse{
		MenuSummaryResponse: menuSummary(m),
		Foods:               make([]domain.FoodResponse, 0, len(m.Foods)),
	}
	for _, f := range m.Foods {
		food := domain.FoodResponse{
			ID:                           f.ID.String(),
			Name:                         f.Name,
			Brand:                        f.Brand,
			ServingSize:                  f.ServingSize,
			MacroPercentageErrorEstimate: f.MacroPercentageErrorEstimate,
			Macros:                       nutrition.ProfileMacros(f.NutrientProfile),
		}
		if f.InformationSource != nil {
			food.MacroInformationSource = f.InformationSource.Name
		}
		for _, u := range f.ServingUnits {
			food.ServingUnits = append(food.ServingUnits, domain.ServingUnitPayload{
				Name:  u.Name,
				Grams: u.Grams,
			})
		}
		response.Foods = append(response.Foods, food)
	}
	return response
}

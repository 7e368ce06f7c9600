package menu

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/entities"
	"Dining-Menu-Backend/internal/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		// Transaction runs fn inside one database transaction; fn's tx must be
		// passed back through WithTx so every write shares the scope.
		Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
		WithTx(tx *gorm.DB) MenuRepository

		CreateMenu(ctx context.Context, menu *entities.Menu) error
		CreateNutrientProfile(ctx context.Context, profile *entities.NutrientProfile) error
		CreateFood(ctx context.Context, food *entities.Food) error
		CreateServingUnits(ctx context.Context, units []*entities.ServingUnit) error
		LinkFoodToMenu(ctx context.Context, menuID, foodID uuid.UUID) error

		FindInformationSourceByName(ctx context.Context, name string) (*entities.InformationSource, error)
		CreateInformationSource(ctx context.Context, source *entities.InformationSource) error
		FindAllInformationSources(ctx context.Context) ([]*entities.InformationSource, error)

		MenuExistsInWindow(ctx context.Context, locationName string, start, end time.Time) (bool, error)
		FindMenusInWindow(ctx context.Context, locationName string, start, end time.Time) ([]*entities.Menu, error)
		FindMenusWithFoodsInWindow(ctx context.Context, locationName string, start, end time.Time) ([]*entities.Menu, error)
		FindMenusWithFoodsByLocationIDs(ctx context.Context, locationIDs []uuid.UUID, start, end time.Time) ([]*entities.Menu, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *menuRepository) WithTx(tx *gorm.DB) MenuRepository {
	if tx == nil {
		return r
	}
	return &menuRepository{db: tx}
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Omit("Foods", "Location").Create(menu).Error
}

func (r *menuRepository) CreateNutrientProfile(ctx context.Context, profile *entities.NutrientProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *menuRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).
		Omit("InformationSource", "NutrientProfile", "ServingUnits").
		Create(food).Error
}

func (r *menuRepository) CreateServingUnits(ctx context.Context, units []*entities.ServingUnit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(units).Error
}

func (r *menuRepository) LinkFoodToMenu(ctx context.Context, menuID, foodID uuid.UUID) error {
	link := &entities.MenuFood{MenuID: menuID, FoodID: foodID}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return domain.ErrDuplicateMenuFood
		}
		return err
	}
	return nil
}

func (r *menuRepository) FindInformationSourceByName(ctx context.Context, name string) (*entities.InformationSource, error) {
	var source entities.InformationSource
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&source).Error; err != nil {
		return nil, err
	}
	return &source, nil
}

func (r *menuRepository) CreateInformationSource(ctx context.Context, source *entities.InformationSource) error {
	return r.db.WithContext(ctx).Create(source).Error
}

func (r *menuRepository) FindAllInformationSources(ctx context.Context) ([]*entities.InformationSource, error) {
	var sources []*entities.InformationSource
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

// windowOverlap matches any stored menu whose [start,end] interval touches the
// query interval, boundaries included. A menu ending exactly when the query
// starts still counts as overlapping.
func (r *menuRepository) windowQuery(ctx context.Context, locationName string, start, end time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.Menu{}).
		Joins("JOIN locations ON locations.id = menus.location_id").
		Where("locations.name = ? AND menus.end_time >= ? AND menus.start_time <= ?", locationName, start, end)
}

func (r *menuRepository) MenuExistsInWindow(ctx context.Context, locationName string, start, end time.Time) (bool, error) {
	var count int64
	if err := r.windowQuery(ctx, locationName, start, end).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *menuRepository) FindMenusInWindow(ctx context.Context, locationName string, start, end time.Time) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.windowQuery(ctx, locationName, start, end).
		Preload("Location").
		Order("menus.start_time DESC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) FindMenusWithFoodsInWindow(ctx context.Context, locationName string, start, end time.Time) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.windowQuery(ctx, locationName, start, end).
		Preload("Location").
		Preload("Foods").
		Preload("Foods.NutrientProfile").
		Preload("Foods.InformationSource").
		Preload("Foods.ServingUnits").
		Order("menus.start_time DESC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) FindMenusWithFoodsByLocationIDs(ctx context.Context, locationIDs []uuid.UUID, start, end time.Time) ([]*entities.Menu, error) {
	var menus []*entities.Menu
	if err := r.db.WithContext(ctx).
		Where("location_id IN ? AND end_time >= ? AND start_time <= ?", locationIDs, start, end).
		Preload("Location").
		Preload("Foods").
		Preload("Foods.NutrientProfile").
		Preload("Foods.InformationSource").
		Preload("Foods.ServingUnits").
		Order("start_time DESC").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

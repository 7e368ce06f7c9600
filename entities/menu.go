package entities

import (
	"time"

	"github.com/google/uuid"
)

type Menu struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	LocationID uuid.UUID `gorm:"type:uuid;index" json:"location_id"`
	StartTime  time.Time `gorm:"index" json:"start_time"`
	EndTime    time.Time `gorm:"index" json:"end_time"`

	Location *Location `gorm:"foreignKey:LocationID"`
	Foods    []*Food   `gorm:"many2many:menu_foods"`
	Timestamp
}

// MenuFood is the join row linking a food onto a menu. The composite primary key
// rejects linking the same food twice to one menu.
type MenuFood struct {
	MenuID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"menu_id"`
	FoodID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"food_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

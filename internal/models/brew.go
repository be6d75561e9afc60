package models

import (
	"time"
)

// Brew is one persisted brew log row. Rows are written once and never updated.
type Brew struct {
	ID        int64     `gorm:"primarykey" json:"id,omitempty" db:"id"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`

	UserID   string    `gorm:"not null;index" json:"user_id" db:"user_id"`
	BrewedAt time.Time `gorm:"not null" json:"brewed_at" db:"brewed_at"`
	BeanName string    `gorm:"not null" json:"bean_name" db:"bean_name"`
	Roaster  *string   `json:"roaster" db:"roaster"`

	// Choice fields are nil when left unselected
	RoastLevel *string `json:"roast_level" db:"roast_level"`
	Method     *string `json:"method" db:"method"`
	GrindSize  *string `json:"grind_size" db:"grind_size"`

	DoseG        float64 `gorm:"not null" json:"dose_g" db:"dose_g"`
	WaterML      *int    `json:"water_ml" db:"water_ml"`
	WaterTempC   *int    `json:"water_temp_c" db:"water_temp_c"`
	DripCount    int     `gorm:"not null;default:1" json:"drip_count" db:"drip_count"`
	TotalTimeSec int     `gorm:"not null" json:"total_time_sec" db:"total_time_sec"`
	Rating       int     `gorm:"not null" json:"rating" db:"rating"`
	Notes        *string `json:"notes" db:"notes"`
}

// TableName keeps the table name identical across backends
func (Brew) TableName() string {
	return "brews"
}

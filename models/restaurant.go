package models

import "time"

const (
	PriceRangeLow     = "LOW"
	PriceRangeMedium  = "MEDIUM"
	PriceRangeHigh    = "HIGH"
	PriceRangePremium = "PREMIUM"
)

type Restaurant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Cuisine     string    `gorm:"type:varchar(100)" json:"cuisine,omitempty"`
	Address     string    `gorm:"type:varchar(255);not null" json:"address"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Website     string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	OpeningTime string    `gorm:"type:varchar(5);not null" json:"opening_time"` // HH:MM
	ClosingTime string    `gorm:"type:varchar(5);not null" json:"closing_time"` // HH:MM
	MaxCapacity int       `gorm:"not null" json:"max_capacity"`
	PriceRange  string    `gorm:"type:varchar(10);not null;default:'MEDIUM'" json:"price_range"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Tables  []Table  `gorm:"foreignKey:RestaurantID" json:"tables,omitempty"`
	Reviews []Review `gorm:"foreignKey:RestaurantID" json:"reviews,omitempty"`
}

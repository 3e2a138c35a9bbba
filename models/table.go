package models

import "time"

type Table struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index;uniqueIndex:idx_restaurant_table_number" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	TableNumber  string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_restaurant_table_number" json:"table_number"`
	Capacity     int        `gorm:"not null" json:"capacity"`
	MinCapacity  *int       `json:"min_capacity,omitempty"`
	// Tanpa default kolom: GORM tidak mengirim field bool bernilai false
	// saat Create, sehingga default true akan menimpa nilai eksplisit.
	IsAvailable  bool       `gorm:"not null" json:"is_available"`
	HasWindow    bool       `gorm:"not null;default:false" json:"has_window"`
	HasOutdoor   bool       `gorm:"not null;default:false" json:"has_outdoor"`
	IsPrivate    bool       `gorm:"not null;default:false" json:"is_private"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableSummary dipakai pada response availability
type TableSummary struct {
	ID          uint   `json:"id"`
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
}

func (t *Table) Summary() TableSummary {
	return TableSummary{
		ID:          t.ID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
	}
}

package models

import "time"

const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationCompleted = "COMPLETED"
	ReservationNoShow    = "NO_SHOW"
)

// ActiveStatuses adalah status yang masih menempati meja.
// CANCELLED, COMPLETED dan NO_SHOW bersifat terminal dan melepas meja.
var ActiveStatuses = []string{ReservationPending, ReservationConfirmed}

type Reservation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index" json:"user_id"`
	User            User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RestaurantID    uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant      Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	TableID         uint       `gorm:"not null;index" json:"table_id"`
	Table           Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	ReservationDate string     `gorm:"type:varchar(10);not null;index" json:"reservation_date"` // YYYY-MM-DD
	ReservationTime string     `gorm:"type:varchar(5);not null" json:"reservation_time"`        // HH:MM
	PartySize       int        `gorm:"not null" json:"party_size"`
	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	SpecialRequests string     `gorm:"type:text" json:"special_requests,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsActive -> reservasi masih menempati meja
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}

// IsTerminal -> status akhir, tidak bisa diubah lagi
func (r *Reservation) IsTerminal() bool {
	return !r.IsActive()
}

package models

import "time"

type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_restaurant_review" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_user_restaurant_review" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Rating       int        `gorm:"not null" json:"rating"` // 1-5
	Title        string     `gorm:"type:varchar(255)" json:"title,omitempty"`
	Content      string     `gorm:"type:text" json:"content,omitempty"`
	IsVerified   bool       `gorm:"not null;default:false" json:"is_verified"`
	IsApproved   bool       `gorm:"not null" json:"is_approved"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

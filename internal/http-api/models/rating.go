package models

import "time"

type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_wine"`
	WineID    string    `json:"wine_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_wine"`
	Value     int       `json:"rating" gorm:"not null;check:value >= 1 AND value <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Wine *Wine `json:"wine,omitempty" gorm:"foreignKey:WineID"`
}

func (Rating) TableName() string {
	return "ratings"
}

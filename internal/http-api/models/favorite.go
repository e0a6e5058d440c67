package models

import "time"

// FavoriteWine is one membership row of a user's favorites set. The
// composite unique index gives the set its no-duplicates guarantee.
type FavoriteWine struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_wine" json:"user_id"`
	WineID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_wine" json:"wine_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Wine *Wine `gorm:"foreignKey:WineID" json:"wine,omitempty"`
}

func (FavoriteWine) TableName() string {
	return "favorite_wines"
}

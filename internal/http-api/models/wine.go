package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WineTypes is the closed set of accepted wine types.
var WineTypes = []string{"red", "white", "orange", "rosé", "sparkling", "dessert"}

type Wine struct {
	ID            string   `json:"id" gorm:"primaryKey;type:uuid"`
	Name          string   `json:"name" gorm:"not null;size:50"`
	Country       string   `json:"country" gorm:"not null;size:20"`
	Origin        string   `json:"origin" gorm:"not null;size:30"`
	Grape         string   `json:"grape" gorm:"not null;size:50"`
	Year          int      `json:"year" gorm:"not null"`
	Type          string   `json:"type" gorm:"not null"`
	PairingNote   *string  `json:"pairing_note,omitempty"`
	AddedSulfites *string  `json:"added_sulfites,omitempty"` // "yes", "no" or "n/a"
	Importer      *string  `json:"importer,omitempty"`
	AveragePrice  *float64 `json:"average_price,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`

	ProducerID *string   `json:"producer_id,omitempty" gorm:"type:uuid;index"`
	Producer   *Producer `json:"producer,omitempty" gorm:"foreignKey:ProducerID"`

	// Derived from the ratings table on every read, never written back.
	AverageRating float64 `json:"average_rating" gorm:"->;-:migration"`
	RatingsCount  int64   `json:"ratings_count" gorm:"->;-:migration"`
}

func (w *Wine) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}

func (Wine) TableName() string {
	return "wines"
}

// ValidWineType reports whether t is one of the accepted wine types.
func ValidWineType(t string) bool {
	for _, wt := range WineTypes {
		if wt == t {
			return true
		}
	}
	return false
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Producer struct {
	ID          string  `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string  `json:"name" gorm:"not null;size:40"`
	Country     string  `json:"country" gorm:"not null"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func (p *Producer) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (Producer) TableName() string {
	return "producers"
}

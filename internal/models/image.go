package models

import "time"

// ImageModel records one uploaded asset in the shared image collection that
// carousel blocks cycle through.
type ImageModel struct {
	Base
	ImageURL   string    `json:"imageUrl"   gorm:"not null"`
	ObjectKey  string    `json:"-"          gorm:"not null"`
	AddedBy    string    `json:"addedBy"`
	AddedByUID string    `json:"addedByUid" gorm:"index"`
	UploadedAt time.Time `json:"uploadedAt" gorm:"index"`
}

func (ImageModel) TableName() string { return "images" }

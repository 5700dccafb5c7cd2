package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One shop per barber, enforced by the unique index.
	OwnerID uint `gorm:"uniqueIndex;not null" json:"ownerId"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Address string `gorm:"size:255;not null" json:"address"`

	CoverImage    string        `gorm:"size:500;not null" json:"coverImage"`
	GalleryImages GalleryImages `gorm:"type:text" json:"galleryImages"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

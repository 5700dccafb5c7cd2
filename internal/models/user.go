package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"fullName"`
	PhoneNumber  string `gorm:"size:20;uniqueIndex;not null" json:"phoneNumber"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	ProfileImage string `gorm:"size:500" json:"profileImage"`

	// Role is fixed at registration. A user is either a client or a
	// barber, never both.
	IsBarber bool `gorm:"default:false" json:"isBarber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

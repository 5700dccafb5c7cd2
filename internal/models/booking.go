package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// No FK constraints on these: bookings outlive the accounts and
	// shops they reference.
	ClientID uint `gorm:"not null;index:idx_bookings_client" json:"clientId"`
	Client   User `gorm:"constraint:-" json:"-"`

	ShopID uint `gorm:"not null;index:idx_bookings_shop_date" json:"shopId"`
	Shop   Shop `gorm:"constraint:-" json:"-"`

	// Names captured at creation time so list reads never join. A later
	// rename does not rewrite history.
	ClientName string `gorm:"size:100;not null" json:"clientName"`
	ShopName   string `gorm:"size:100;not null" json:"shopName"`

	// Calendar date of the appointment; the slot token carries the
	// time of day.
	Date time.Time `gorm:"type:date;not null;index:idx_bookings_shop_date" json:"date"`
	Time string    `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

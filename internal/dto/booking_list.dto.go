package dto

import "time"

// MyBookingDTO is a booking seen from the requester's side, annotated
// with shop contact fields for the list screen.
type MyBookingDTO struct {
	ID       uint      `json:"id"`
	ShopID   uint      `json:"shop_id"`
	ShopName string    `json:"shop_name"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Status   string    `json:"status"`

	ShopAddress string `json:"shop_address"`
	ShopPhone   string `json:"shop_phone"`
}

// ShopBookingDTO is a booking seen from the shop owner's side, annotated
// with client contact fields.
type ShopBookingDTO struct {
	ID         uint      `json:"id"`
	ClientID   uint      `json:"client_id"`
	ClientName string    `json:"client_name"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`

	ClientPhone string `json:"client_phone"`
}

// BookingListDTO is the combined shape every caller receives;
// ShopBookings stays empty for non-barbers.
type BookingListDTO struct {
	MyBookings   []MyBookingDTO   `json:"myBookings"`
	ShopBookings []ShopBookingDTO `json:"shopBookings"`
}

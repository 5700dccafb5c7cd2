package booking

import (
	"context"

	domain "github.com/barberfactory/barberfactory-api/internal/domain/booking"
	"github.com/barberfactory/barberfactory-api/internal/dto"
	"github.com/barberfactory/barberfactory-api/internal/identity"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute assembles the role-scoped booking lists. Everyone gets the
// bookings they placed, newest date first; a barber additionally gets
// the bookings against their shop, soonest date first.
func (uc *ListBookings) Execute(
	ctx context.Context,
	ident identity.Identity,
) (*dto.BookingListDTO, error) {

	out := &dto.BookingListDTO{
		MyBookings:   []dto.MyBookingDTO{},
		ShopBookings: []dto.ShopBookingDTO{},
	}

	mine, err := uc.repo.ListBookingsByClient(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	for _, b := range mine {
		out.MyBookings = append(out.MyBookings, projectMyBooking(b))
	}

	if !ident.IsBarber {
		return out, nil
	}

	// A barber without a shop profile yet simply has no shop bookings.
	shop, err := uc.repo.GetShopByOwner(ctx, ident.UserID)
	if err != nil {
		return out, nil
	}

	shopSide, err := uc.repo.ListBookingsByShop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}
	for _, b := range shopSide {
		out.ShopBookings = append(out.ShopBookings, projectShopBooking(b))
	}

	return out, nil
}

func projectMyBooking(b models.Booking) dto.MyBookingDTO {
	return dto.MyBookingDTO{
		ID:          b.ID,
		ShopID:      b.ShopID,
		ShopName:    b.ShopName,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		ShopAddress: b.Shop.Address,
		ShopPhone:   b.Shop.Phone,
	}
}

func projectShopBooking(b models.Booking) dto.ShopBookingDTO {
	return dto.ShopBookingDTO{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		ClientPhone: b.Client.PhoneNumber,
	}
}

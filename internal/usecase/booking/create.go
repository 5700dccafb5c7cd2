package booking

import (
	"context"
	"time"

	"github.com/barberfactory/barberfactory-api/internal/audit"
	domain "github.com/barberfactory/barberfactory-api/internal/domain/booking"
	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/identity"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ShopID uint
	Date   string
	Time   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	ident identity.Identity,
	in CreateBookingInput,
) (*models.Booking, error) {

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, httperr.ErrBusiness("shop_not_found")
	}

	// Only client identities may book. Barbers take bookings, they do
	// not place them.
	if ident.IsBarber {
		return nil, httperr.ErrBusiness("barbers_cannot_book")
	}

	client, err := uc.repo.GetUserByID(ctx, ident.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if !domain.IsSlotToken(in.Time) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckBookingWindow(date, uc.now()); err != nil {
		return nil, err
	}

	// Names are denormalized here on purpose: a later rename never
	// rewrites past bookings.
	b := &models.Booking{
		ClientID:   client.ID,
		ShopID:     shop.ID,
		ClientName: client.FullName,
		ShopName:   shop.Name,
		Date:       date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			uc.audit.Dispatch(audit.Event{
				UserID: &ident.UserID,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"shop_id": shop.ID,
					"date":    in.Date,
					"time":    in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

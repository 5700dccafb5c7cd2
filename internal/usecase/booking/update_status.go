package booking

import (
	"context"

	"github.com/barberfactory/barberfactory-api/internal/audit"
	domain "github.com/barberfactory/barberfactory-api/internal/domain/booking"
	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/identity"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	ident identity.Identity,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	target, err := domain.ParseTargetStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// A missing shop and a wrong owner read the same from outside:
	// the caller is not authorized for this booking.
	shop, err := uc.repo.GetShopByID(ctx, b.ShopID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_shop_owner")
	}

	if shop.OwnerID != ident.UserID {
		return nil, httperr.ErrBusiness("not_shop_owner")
	}

	if err := domain.Transition(b, target); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	action := "booking_confirmed"
	if target == domain.StatusDeclined {
		action = "booking_declined"
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

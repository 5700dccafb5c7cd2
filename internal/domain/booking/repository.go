package booking

import (
	"context"

	"github.com/barberfactory/barberfactory-api/internal/models"
)

type Repository interface {
	// -------- Shop directory --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetShopByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Shop, error)

	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persists a new booking, guaranteeing the
	// slot-exclusivity invariant: it fails with the slot_unavailable
	// business error when a PENDING or CONFIRMED booking already holds
	// the same (shop, date, time) slot, even under concurrent callers.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read side) --------
	ListBookingsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListBookingsByShop(
		ctx context.Context,
		shopID uint,
	) ([]models.Booking, error)
}

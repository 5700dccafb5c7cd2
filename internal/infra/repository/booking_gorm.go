package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop directory
// --------------------------------------------------

func (r *BookingGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetShopByOwner(
	ctx context.Context,
	ownerID uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking runs the slot check and the insert in one transaction.
// The pre-check locks matching rows FOR UPDATE; the partial unique index
// on (shop_id, date, time) over non-terminal statuses is the authority
// when two writers race past the check, and its violation is translated
// to the slot_unavailable business error.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"shop_id = ? AND date = ? AND time = ? AND status IN ?",
				b.ShopID, b.Date, b.Time, []string{"PENDING", "CONFIRMED"},
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return insertBooking(tx, b)
	})
}

// insertBooking translates a violation of the open-slot unique index
// into the slot_unavailable business error.
func insertBooking(tx *gorm.DB, b *models.Booking) error {
	if err := tx.Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Booking (read side)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Shop").
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByShop(
	ctx context.Context,
	shopID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("shop_id = ?", shopID).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

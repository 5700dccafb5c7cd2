package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/middleware"
	ucBooking "github.com/barberfactory/barberfactory-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
	statusUC *ucBooking.UpdateBookingStatus
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
	statusUC *ucBooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ShopID uint   `json:"shopId" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ident, ucBooking.CreateBookingInput{
		ShopID: req.ShopID,
		Date:   req.Date,
		Time:   req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "barbers_cannot_book"):
			httperr.Forbidden(c, "barbers_cannot_book", "Barbers cannot book appointments")
		case httperr.IsBusiness(err, "shop_not_found"):
			httperr.NotFound(c, "shop_not_found", "Shop not found")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Client not found")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.BadRequest(c, "slot_unavailable", "Time slot not available")
		case httperr.IsBusiness(err, "invalid_slot"):
			httperr.BadRequest(c, "invalid_slot", "Time is not a bookable slot")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD")
		case httperr.IsBusiness(err, "too_soon"):
			httperr.BadRequest(c, "too_soon", "Bookings open one day ahead")
		case httperr.IsBusiness(err, "too_far_ahead"):
			httperr.BadRequest(c, "too_far_ahead", "Bookings close 30 days ahead")
		default:
			log.Error().Err(err).Msg("booking creation failed")
			httperr.Internal(c, "internal_error", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	out, err := h.listUC.Execute(c.Request.Context(), ident)
	if err != nil {
		log.Error().Err(err).Msg("booking listing failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// STATUS (confirm / decline)
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), ident, req.BookingID, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found")
		case httperr.IsBusiness(err, "not_shop_owner"):
			httperr.Forbidden(c, "not_shop_owner", "Not authorized to update this booking")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be CONFIRMED or DECLINED")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Booking already resolved")
		default:
			log.Error().Err(err).Msg("booking status update failed")
			httperr.Internal(c, "internal_error", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

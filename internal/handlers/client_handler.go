package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/middleware"
	"github.com/barberfactory/barberfactory-api/internal/models"
	"github.com/barberfactory/barberfactory-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type UpdateProfileRequest struct {
	FullName     *string `json:"fullName"`
	PhoneNumber  *string `json:"phoneNumber"`
	ProfileImage *string `json:"profileImage"`
}

func (h *ClientHandler) GetProfile(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var user models.User
	if err := h.db.First(&user, ident.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "Profile not found")
			return
		}
		log.Error().Err(err).Msg("profile lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var user models.User
	if err := h.db.First(&user, ident.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "Profile not found")
			return
		}
		log.Error().Err(err).Msg("profile lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		phone := strings.TrimSpace(*req.PhoneNumber)
		if !validators.IsPhoneNumberValid(phone) {
			httperr.BadRequest(c, "invalid_phone_number", "Phone number is not valid.")
			return
		}
		user.PhoneNumber = phone
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := h.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "phone_already_registered", "Phone number already registered")
			return
		}
		log.Error().Err(err).Msg("profile update failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, user)
}

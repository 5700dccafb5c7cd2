package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberfactory/barberfactory-api/internal/audit"
	"github.com/barberfactory/barberfactory-api/internal/config"
	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/infra/cache"
	"github.com/barberfactory/barberfactory-api/internal/middleware"
	"github.com/barberfactory/barberfactory-api/internal/models"
	"github.com/barberfactory/barberfactory-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	cache  *cache.ShopListCache
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	shopCache *cache.ShopListCache,
	auditDispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		cache:  shopCache,
		audit:  auditDispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	IsBarber    bool   `json:"isBarber"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	if !validators.IsPhoneNumberValid(phone) {
		httperr.BadRequest(c, "invalid_phone_number", "Phone number is not valid.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("phone_number = ?", phone).Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("user lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "phone_already_registered", "Phone number already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	user := models.User{
		FullName:     strings.TrimSpace(req.FullName),
		PhoneNumber:  phone,
		PasswordHash: string(hashed),
		IsBarber:     req.IsBarber,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// Concurrent registration for the same phone lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "phone_already_registered", "Phone number already registered")
			return
		}
		log.Error().Err(err).Msg("user creation failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userPayload(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	phone := strings.TrimSpace(req.PhoneNumber)

	var user models.User
	if err := h.db.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("user lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userPayload(&user),
	})
}

// DeleteAccount removes the user and, for barbers, the owned shop
// profile with it.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var user models.User
	if err := h.db.First(&user, ident.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if user.IsBarber {
			if err := tx.Where("owner_id = ?", user.ID).Delete(&models.Shop{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("account deletion failed")
		httperr.Internal(c, "internal_error", "Error deleting account")
		return
	}

	if user.IsBarber {
		h.cache.Invalidate(c.Request.Context())
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "account_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"isBarber": user.IsBarber,
		"exp":      time.Now().Add(h.config.JWTTTL).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"fullName":    user.FullName,
		"phoneNumber": user.PhoneNumber,
		"isBarber":    user.IsBarber,
	}
}

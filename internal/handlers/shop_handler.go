package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barberfactory/barberfactory-api/internal/audit"
	"github.com/barberfactory/barberfactory-api/internal/dto"
	"github.com/barberfactory/barberfactory-api/internal/httperr"
	"github.com/barberfactory/barberfactory-api/internal/infra/cache"
	"github.com/barberfactory/barberfactory-api/internal/middleware"
	"github.com/barberfactory/barberfactory-api/internal/models"
)

type ShopHandler struct {
	db    *gorm.DB
	cache *cache.ShopListCache
	audit *audit.Dispatcher
}

func NewShopHandler(
	db *gorm.DB,
	shopCache *cache.ShopListCache,
	auditDispatcher *audit.Dispatcher,
) *ShopHandler {
	return &ShopHandler{
		db:    db,
		cache: shopCache,
		audit: auditDispatcher,
	}
}

// --------- Requests ---------

type CreateShopRequest struct {
	Name          string   `json:"name" binding:"required"`
	Phone         string   `json:"phone" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	CoverImage    string   `json:"coverImage" binding:"required"`
	GalleryImages []string `json:"galleryImages"`
}

type UpdateShopRequest struct {
	Name          *string   `json:"name"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	CoverImage    *string   `json:"coverImage"`
	GalleryImages *[]string `json:"galleryImages"`
}

// --------- Handlers ---------

// Create registers the caller's shop profile. One shop per barber; the
// unique index on owner_id backs the check.
func (h *ShopHandler) Create(c *gin.Context) {
	ident := middleware.IdentityFrom(c)
	if !ident.IsBarber {
		httperr.Forbidden(c, "not_a_barber", "Only barbers can create a shop profile")
		return
	}

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.Shop{}).Where("owner_id = ?", ident.UserID).Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("shop lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "shop_already_exists", "Shop already exists for this barber")
		return
	}

	shop := models.Shop{
		OwnerID:       ident.UserID,
		Name:          strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		CoverImage:    req.CoverImage,
		GalleryImages: req.GalleryImages,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "shop_already_exists", "Shop already exists for this barber")
			return
		}
		log.Error().Err(err).Msg("shop creation failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "shop_created",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusCreated, shop)
}

func (h *ShopHandler) GetProfile(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var shop models.Shop
	if err := h.db.Where("owner_id = ?", ident.UserID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "shop_not_found", "Shop not found")
			return
		}
		log.Error().Err(err).Msg("shop lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// Update applies a partial update: only supplied fields overwrite.
func (h *ShopHandler) Update(c *gin.Context) {
	ident := middleware.IdentityFrom(c)

	var shop models.Shop
	if err := h.db.Where("owner_id = ?", ident.UserID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "shop_not_found", "Shop not found")
			return
		}
		log.Error().Err(err).Msg("shop lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		shop.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		shop.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil && strings.TrimSpace(*req.Address) != "" {
		shop.Address = strings.TrimSpace(*req.Address)
	}
	if req.CoverImage != nil && *req.CoverImage != "" {
		shop.CoverImage = *req.CoverImage
	}
	if req.GalleryImages != nil {
		shop.GalleryImages = *req.GalleryImages
	}

	if err := h.db.Save(&shop).Error; err != nil {
		log.Error().Err(err).Msg("shop update failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	h.audit.Dispatch(audit.Event{
		UserID:   &ident.UserID,
		Action:   "shop_updated",
		Entity:   "shop",
		EntityID: &shop.ID,
	})

	c.JSON(http.StatusOK, shop)
}

// ListAll serves the discovery list, newest shops first, through the
// short-TTL cache.
func (h *ShopHandler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()

	if shops, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, shops)
		return
	}

	var shops []models.Shop
	if err := h.db.Order("created_at DESC").Find(&shops).Error; err != nil {
		log.Error().Err(err).Msg("shop listing failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	out := make([]dto.ShopSummaryDTO, 0, len(shops))
	for _, s := range shops {
		out = append(out, dto.NewShopSummary(s))
	}

	h.cache.Set(ctx, out)

	c.JSON(http.StatusOK, out)
}

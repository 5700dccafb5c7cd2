package dto

import (
	"time"

	"github.com/barberfactory/barberfactory-api/internal/models"
)

// ShopSummaryDTO is the read-safe projection served to the discovery
// screen: public contact fields only, no internal bookkeeping.
type ShopSummaryDTO struct {
	ID            uint      `json:"id"`
	OwnerID       uint      `json:"ownerId"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CoverImage    string    `json:"coverImage"`
	GalleryImages []string  `json:"galleryImages"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewShopSummary(s models.Shop) ShopSummaryDTO {
	return ShopSummaryDTO{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Phone:         s.Phone,
		Address:       s.Address,
		CoverImage:    s.CoverImage,
		GalleryImages: s.GalleryImages,
		CreatedAt:     s.CreatedAt,
	}
}

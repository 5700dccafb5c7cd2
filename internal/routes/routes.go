package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/barberfactory/barberfactory-api/internal/audit"
	"github.com/barberfactory/barberfactory-api/internal/config"
	"github.com/barberfactory/barberfactory-api/internal/handlers"
	"github.com/barberfactory/barberfactory-api/internal/infra/cache"
	infraRepo "github.com/barberfactory/barberfactory-api/internal/infra/repository"
	"github.com/barberfactory/barberfactory-api/internal/middleware"
	ucBooking "github.com/barberfactory/barberfactory-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	shopCache := cache.NewShopListCache(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING ENGINE
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, shopCache, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db)
	shopHandler := handlers.NewShopHandler(db, shopCache, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		updateBookingStatusUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.DELETE("/auth/account", authHandler.DeleteAccount)

			secured.GET("/client/profile", clientHandler.GetProfile)
			secured.PUT("/client/update", clientHandler.UpdateProfile)

			secured.POST("/shop/create", shopHandler.Create)
			secured.GET("/shop/profile", shopHandler.GetProfile)
			secured.PUT("/shop/update", shopHandler.Update)
			secured.GET("/shop/all", shopHandler.ListAll)

			secured.POST("/booking/create", bookingHandler.Create)
			secured.GET("/booking/all", bookingHandler.List)
			secured.PUT("/booking/status", bookingHandler.UpdateStatus)
		}
	}
}

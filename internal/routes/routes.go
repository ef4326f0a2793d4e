package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookline/booking-api/internal/audit"
	"github.com/bookline/booking-api/internal/cache"
	"github.com/bookline/booking-api/internal/config"
	"github.com/bookline/booking-api/internal/handlers"
	infraRepo "github.com/bookline/booking-api/internal/infra/repository"
	"github.com/bookline/booking-api/internal/middleware"
	"github.com/bookline/booking-api/internal/token"
	ucBooking "github.com/bookline/booking-api/internal/usecase/booking"
	ucProfile "github.com/bookline/booking-api/internal/usecase/profile"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	var profileCache cache.Cache
	if cfg.RedisAddr != "" {
		c, err := cache.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Printf("redis unavailable, profile cache disabled: %v", err)
		} else {
			profileCache = c
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, profileCache)
	updateBookingUC := ucBooking.NewUpdateBooking(repo, auditDispatcher, profileCache)
	deleteBookingUC := ucBooking.NewDeleteBooking(repo, auditDispatcher, profileCache)
	listBookingsUC := ucBooking.NewListBookings(repo)

	getProfileUC := ucProfile.NewGetProfile(repo, profileCache, cfg.ProfileCacheTTL)
	updateProfileUC := ucProfile.NewUpdateProfile(repo, auditDispatcher, profileCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(repo, tokens, auditDispatcher)
	clientHandler := handlers.NewClientHandler(repo)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.POST("/clients", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/users/:email", clientHandler.GetByEmail)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me/profile", profileHandler.GetProfile)
			secured.PATCH("/me/profile", profileHandler.UpdateProfile)

			secured.POST("/me/bookings", bookingHandler.Create)
			secured.PUT("/me/bookings/:id", bookingHandler.Update)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)

			secured.GET("/bookings", bookingHandler.List)
		}
	}
}

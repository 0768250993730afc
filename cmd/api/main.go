package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"beautysalon/internal/config"
	"beautysalon/internal/database"
	"beautysalon/internal/middleware"
	"beautysalon/internal/modules/booking"
	"beautysalon/internal/modules/catalog"
	"beautysalon/internal/modules/content"
	"beautysalon/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	serviceRepo := repository.NewServiceRepository(db)
	masterRepo := repository.NewMasterRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	tx := repository.NewTransactor(db)

	catalogService := catalog.NewService(serviceRepo, masterRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(appointmentRepo, masterRepo, serviceRepo, tx)
	bookingHandler := booking.NewHandler(bookingService)

	contentService := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		contentHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api, middleware.RateLimit(limiter))
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

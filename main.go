package main

import (
	"context"
	"log"

	"github.com/costeratours/experience-service/config"
	"github.com/costeratours/experience-service/internal/catalog"
	"github.com/costeratours/experience-service/internal/consumer"
	"github.com/costeratours/experience-service/internal/handler"
	"github.com/costeratours/experience-service/internal/middleware"
	"github.com/costeratours/experience-service/internal/repository"
	"github.com/costeratours/experience-service/internal/service"
	"github.com/costeratours/experience-service/pkg/database"
	"github.com/costeratours/experience-service/pkg/rabbitmq"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	experienceRepo := repository.NewExperienceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Change feed: publish on admin mutations, consume to patch the catalog
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Services
	experienceSvc := service.NewExperienceService(experienceRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo)

	// Catalog: seeded from the store, kept fresh by poll + push
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seed, err := experienceRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[main] seeding catalog from store failed, starting empty: %v", err)
	}
	cat := catalog.New(seed, experienceRepo.FindAll, cfg.CatalogPollInterval)
	cat.Start(ctx)
	defer cat.Stop()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to subscribe to change feed: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	consumer.NewExperienceConsumer(cat).Start(msgs)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "experience-service"})
	})

	public := e.Group("/api/v1")
	// Booking administration is admin-only; catalog content is open to editors.
	admin := e.Group("/api/v1/admin", middleware.RequireAdmin(cfg.JWTSecret))
	content := e.Group("/api/v1/admin", middleware.RequireContentManager(cfg.JWTSecret))

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(public, admin)
	handler.NewExperienceHandler(experienceSvc, bookingSvc, cat).RegisterRoutes(public, content)

	log.Printf("Experience Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roomdesk/internal/config"
	"roomdesk/internal/database"
	"roomdesk/internal/display"
	"roomdesk/internal/domain"
	"roomdesk/internal/middleware"
	"roomdesk/internal/modules/auth"
	"roomdesk/internal/modules/booking"
	"roomdesk/internal/modules/payment"
	"roomdesk/internal/modules/pricing"
	"roomdesk/internal/modules/reservation"
	"roomdesk/internal/modules/rooms"
	jwtsvc "roomdesk/internal/pkg/jwt"
	"roomdesk/internal/pkg/timeutil"
	"roomdesk/internal/repository"
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
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	accountRepo := repository.NewAccountRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	clock := timeutil.RealClock{}

	authService := auth.NewService(accountRepo, j)
	authHandler := auth.NewHandler(authService)

	roomService := rooms.NewService(roomRepo, log.Printf)
	roomHandler := rooms.NewHandler(roomService)

	paymentService := payment.NewService(payment.AcceptAllProcessor{}, log.Printf)

	controller := booking.NewController(bookingRepo, roomService, paymentService, clock, log.Printf)
	bookingHandler := booking.NewHandler(controller)

	reservationService := reservation.NewService(
		bookingRepo,
		roomService,
		accountRepo,
		pricing.NewFactory(),
		clock,
		controller.Observers(),
		log.Printf,
	)
	reservationHandler := reservation.NewHandler(reservationService, accountRepo)

	hub := display.NewHub()
	displayHandler := display.NewHandler(hub)

	// Every booking mutation fans out to the log, the lookup cache and the
	// kiosk displays through the shared observer list.
	controller.AddObserver(booking.NewLogObserver(log.Printf))
	controller.AddObserver(reservationService)
	controller.AddObserver(hub)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		roomHandler.RegisterRoutes(v1)
		displayHandler.RegisterRoutes(v1)

		// any authenticated account
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		// coordinator/admin only
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.RequireType(
			string(domain.AccountAdmin),
			string(domain.AccountCoordinator),
		))
		{
			roomHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/melodia/catalog-api/internal/api/handler"
	"github.com/melodia/catalog-api/internal/api/middleware"
	"github.com/melodia/catalog-api/internal/core/service"
	"github.com/melodia/catalog-api/internal/infrastructure/config"
	mongodb "github.com/melodia/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/melodia/catalog-api/internal/infrastructure/db/redis"
	"github.com/melodia/catalog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	artistRepo := mongodb.NewArtistRepository(db)
	albumRepo := mongodb.NewAlbumRepository(db)
	concertRepo := mongodb.NewConcertRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, artistRepo, log)
	artistService := service.NewArtistService(artistRepo, albumRepo, concertRepo, log)
	albumService := service.NewAlbumService(albumRepo, artistRepo, log)
	concertService := service.NewConcertService(concertRepo, artistRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	artistHandler := handler.NewArtistHandler(artistService)
	albumHandler := handler.NewAlbumHandler(albumService)
	concertHandler := handler.NewConcertHandler(concertService)

	authenticated := middleware.Auth(cfg.JWTSecret)
	admin := middleware.Admin(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authenticated)

	// --- User routes ---
	u := e.Group("/user")
	u.GET("", userHandler.Me, authenticated)
	u.GET("/all", userHandler.All, admin...)
	u.GET("/:id", userHandler.Get, admin...)
	u.DELETE("/delete/:id", userHandler.Delete, admin...)
	u.PATCH("/update", userHandler.Update, authenticated)
	u.PATCH("/fav/add/:artistId", userHandler.AddFavorite, authenticated)
	u.PATCH("/fav/del/:artistId", userHandler.RemoveFavorite, authenticated)

	// --- Catalog routes (mutations require the admin role) ---
	e.GET("/artists", artistHandler.List, authenticated)
	e.POST("/artists", artistHandler.Create, admin...)
	e.GET("/albums", albumHandler.List, authenticated)
	e.POST("/albums", albumHandler.Create, admin...)
	e.GET("/concerts", concertHandler.List, authenticated)
	e.POST("/concerts", concertHandler.Create, admin...)

	// --- Ops surface (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

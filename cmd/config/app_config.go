package config

import (
	"os"
	"time"

	"github.com/Smadden00/sophsAppAPI/internal/api/handlers"
	"github.com/Smadden00/sophsAppAPI/internal/api/routes"
	"github.com/Smadden00/sophsAppAPI/internal/middleware"
	"github.com/Smadden00/sophsAppAPI/internal/utils"
	"github.com/Smadden00/sophsAppAPI/internal/utils/storage"
	"github.com/Smadden00/sophsAppAPI/pkg/city"
	"github.com/Smadden00/sophsAppAPI/pkg/identity"
	"github.com/Smadden00/sophsAppAPI/pkg/jwt"
	"github.com/Smadden00/sophsAppAPI/pkg/recipe"
	"github.com/Smadden00/sophsAppAPI/pkg/review"
	"github.com/Smadden00/sophsAppAPI/pkg/upload"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	hasher, err := identity.NewHasher(utils.GetConfig("ENCRYPTION_SECRET_KEY"))
	if err != nil {
		// without the signing secret no identity can be derived
		log.Fatalf("identity hasher unavailable: %v", err)
	}

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	cityRepository := city.NewCityRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	recipeService := recipe.NewRecipeService(recipeRepository, s3, utils.GetConfig("ASSET_BASE_URL"))
	reviewService := review.NewReviewService(reviewRepository)
	cityService := city.NewCityService(cityRepository)
	uploadService := upload.NewUploadService(s3)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cityHandler := handlers.NewCityHandler(cityService)
	uploadHandler := handlers.NewUploadHandler(uploadService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		ReviewHandler: reviewHandler,
		CityHandler:   cityHandler,
		UploadHandler: uploadHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
		Hasher:        hasher,
		DB:            db,
	}
	routesConfig.Setup()
	return app, nil
}

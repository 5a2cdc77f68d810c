package routes

import (
	"github.com/Smadden00/sophsAppAPI/internal/api/handlers"
	"github.com/Smadden00/sophsAppAPI/internal/middleware"
	"github.com/Smadden00/sophsAppAPI/pkg/identity"
	"github.com/Smadden00/sophsAppAPI/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	ReviewHandler handlers.ReviewHandler
	CityHandler   handlers.CityHandler
	UploadHandler handlers.UploadHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
	Hasher        identity.Hasher
	DB            *gorm.DB
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Reviews()
	c.RestaurantTypes()
	c.Cities()
	c.Uploads()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService, c.Hasher)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("/", c.RecipeHandler.GetAllRecipes)
		recipes.Put("/", c.auth(), c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Put("/:id", c.auth(), c.RecipeHandler.AddComment)
		recipes.Post("/:id/rating", c.auth(), c.RecipeHandler.SubmitRating)
		recipes.Get("/:id/rating", c.auth(), c.RecipeHandler.GetUsersRating)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/reviews")
	{
		reviews.Get("/", c.ReviewHandler.GetAllReviews)
		reviews.Put("/", c.auth(), c.ReviewHandler.CreateReview)
		// must register before the :id route
		reviews.Get("/profile-reviews", c.auth(), c.ReviewHandler.GetProfileReviews)
		reviews.Get("/:id", c.ReviewHandler.GetReview)
	}
}

func (c *Config) RestaurantTypes() {
	c.App.Get("/api/restaurant-types", c.auth(), c.ReviewHandler.GetRestaurantTypes)
}

func (c *Config) Cities() {
	c.App.Get("/api/cities", c.CityHandler.GetCitiesByState)
}

func (c *Config) Uploads() {
	c.App.Post("/api/uploads/presign", c.auth(), c.UploadHandler.PresignImageUpload)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	db := c.DB
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		if err := db.WithContext(c.Context()).Exec("SELECT 1").Error; err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

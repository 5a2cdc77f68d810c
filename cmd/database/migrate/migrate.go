package migration

import (
	"fmt"
	"log"

	"github.com/Smadden00/sophsAppAPI/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeInstruction{}); err != nil {
		log.Fatalf("Error migrating recipe instruction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeComment{}); err != nil {
		log.Fatalf("Error migrating recipe comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeRating{}); err != nil {
		log.Fatalf("Error migrating recipe rating database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RestaurantType{}); err != nil {
		log.Fatalf("Error migrating restaurant type database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RestTypeReviewRef{}); err != nil {
		log.Fatalf("Error migrating review type ref database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.City{}); err != nil {
		log.Fatalf("Error migrating city database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

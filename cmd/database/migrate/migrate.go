package migration

import (
	"TasteBite-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.UserProfile{},
		&entities.UserPreferences{},
		&entities.Recipe{},
		&entities.RecipePhoto{},
		&entities.Tag{},
		&entities.Favorite{},
		&entities.Collection{},
		&entities.CollectionItem{},
		&entities.ShoppingList{},
		&entities.ShoppingListItem{},
		&entities.Comment{},
		&entities.CommentReaction{},
		&entities.Notification{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}

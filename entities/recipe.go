package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RecipeStatusPublished = "published"
	RecipeStatusDraft     = "draft"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CookingTime int       `json:"cooking_time"` // minutes
	Servings    int       `json:"servings"`
	Status      string    `gorm:"default:published" json:"status"` // "published", "draft"

	// JSON-encoded ordered string lists, decoded at the service layer.
	Ingredients  string `gorm:"type:text" json:"-"`
	Instructions string `gorm:"type:text" json:"-"`

	User   *UserProfile  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Photos []RecipePhoto `gorm:"foreignKey:RecipeID" json:"photos,omitempty"`
	Tags   []Tag         `gorm:"many2many:recipe_tags" json:"tags,omitempty"`

	Timestamp
}

type RecipePhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	PhotoURL   string    `json:"photo_url"`
	IsPrimary  bool      `json:"is_primary"` // advisory, not a uniqueness constraint
	StepNumber *int      `json:"step_number,omitempty"`

	Timestamp
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

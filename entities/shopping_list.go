package entities

import (
	"github.com/google/uuid"
)

type ShoppingList struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`

	Items []ShoppingListItem `gorm:"foreignKey:ShoppingListID" json:"items,omitempty"`

	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID  `json:"shopping_list_id"`
	Ingredient     string     `json:"ingredient"`
	Quantity       *string    `json:"quantity,omitempty"`
	Checked        bool       `json:"checked"`
	RecipeID       *uuid.UUID `json:"recipe_id,omitempty"` // recipe the item was copied from

	Timestamp
}

package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingLists   = "success get shopping lists"
	MessageSuccessGetShoppingList    = "success get shopping list"
	MessageSuccessCreateShoppingList = "shopping list created successfully"
	MessageSuccessUpdateShoppingList = "shopping list updated successfully"
	MessageSuccessDeleteShoppingList = "shopping list deleted successfully"
	MessageSuccessAddListItems       = "items added successfully"
	MessageSuccessUpdateListItem     = "item updated successfully"
	MessageSuccessDeleteListItem     = "item deleted successfully"
	MessageSuccessExportList         = "success export shopping list"

	MessageFailedGetShoppingLists   = "failed to get shopping lists"
	MessageFailedGetShoppingList    = "failed to get shopping list"
	MessageFailedCreateShoppingList = "failed to create shopping list"
	MessageFailedUpdateShoppingList = "failed to update shopping list"
	MessageFailedDeleteShoppingList = "failed to delete shopping list"
	MessageFailedAddListItems       = "failed to add items"
	MessageFailedUpdateListItem     = "failed to update item"
	MessageFailedDeleteListItem     = "failed to delete item"
	MessageFailedExportList         = "failed to export shopping list"

	ErrShoppingListNotFound     = errors.New("shopping list not found")
	ErrUnauthorizedListAccess   = errors.New("shopping list not found or not owned by caller")
	ErrShoppingListItemNotFound = errors.New("shopping list item not found")
)

type (
	CreateShoppingListRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateShoppingListRequest struct {
		Name *string `json:"name" validate:"omitempty,min=1"`
	}

	AddShoppingListItemRequest struct {
		Ingredient string  `json:"ingredient" validate:"required"`
		Quantity   *string `json:"quantity"`
		RecipeID   *string `json:"recipe_id" validate:"omitempty,uuid"`
	}

	AddShoppingListItemsRequest struct {
		Items []AddShoppingListItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateShoppingListItemRequest struct {
		Ingredient *string `json:"ingredient" validate:"omitempty,min=1"`
		Quantity   *string `json:"quantity"`
		Checked    *bool   `json:"checked"`
	}

	ShoppingListItem struct {
		ID         string  `json:"id"`
		Ingredient string  `json:"ingredient"`
		Quantity   *string `json:"quantity,omitempty"`
		Checked    bool    `json:"checked"`
		RecipeID   *string `json:"recipe_id,omitempty"`
	}

	ShoppingList struct {
		ID        string             `json:"id"`
		Name      string             `json:"name"`
		Items     []ShoppingListItem `json:"items"`
		CreatedAt time.Time          `json:"created_at"`
	}

	ShoppingListExport struct {
		Text string `json:"text"`
	}
)

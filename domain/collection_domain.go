package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCollections      = "success get collections"
	MessageSuccessGetCollectionDetail = "success get collection detail"
	MessageSuccessCreateCollection    = "collection created successfully"
	MessageSuccessUpdateCollection    = "collection updated successfully"
	MessageSuccessDeleteCollection    = "collection deleted successfully"
	MessageSuccessAddCollectionItem   = "recipe added to collection"
	MessageSuccessRemoveItem          = "recipe removed from collection"

	MessageFailedGetCollections      = "failed to get collections"
	MessageFailedGetCollectionDetail = "failed to get collection detail"
	MessageFailedCreateCollection    = "failed to create collection"
	MessageFailedUpdateCollection    = "failed to update collection"
	MessageFailedDeleteCollection    = "failed to delete collection"
	MessageFailedAddCollectionItem   = "failed to add recipe to collection"
	MessageFailedRemoveItem          = "failed to remove recipe from collection"

	ErrCollectionNotFound           = errors.New("collection not found")
	ErrUnauthorizedCollectionAccess = errors.New("collection not found or not owned by caller")
)

type (
	CreateCollectionRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		IsPublic    *bool  `json:"is_public"`
	}

	UpdateCollectionRequest struct {
		Name        *string `json:"name" validate:"omitempty,min=1"`
		Description *string `json:"description"`
		IsPublic    *bool   `json:"is_public"`
	}

	AddCollectionItemRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	CollectionSummary struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		IsPublic    bool      `json:"is_public"`
		CreatedAt   time.Time `json:"created_at"`
	}

	CollectionRecipeSummary struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		CookingTime int    `json:"cooking_time"`
		Servings    int    `json:"servings"`
		PhotoURL    string `json:"photo_url,omitempty"`
	}

	CollectionDetail struct {
		CollectionSummary
		Recipes []CollectionRecipeSummary `json:"recipes"`
	}
)

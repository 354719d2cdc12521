package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessAddPhoto        = "photo added successfully"
	MessageSuccessSetTags         = "tags updated successfully"
	MessageSuccessToggleFavorite  = "favorite toggled successfully"
	MessageSuccessGetFavorites    = "success get favorites"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedAddPhoto        = "failed to add photo"
	MessageFailedSetTags         = "failed to update tags"
	MessageFailedToggleFavorite  = "failed to toggle favorite"
	MessageFailedGetFavorites    = "failed to get favorites"

	MessagePartialCollections = "recipe created but failed to assign collections"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("recipe not found or not owned by caller")
	ErrRecipeCollectionAssign   = errors.New("failed to assign recipe to collections")
	ErrPhotoURLRequired         = errors.New("photo_url is required")
)

type (
	CreateRecipeRequest struct {
		Title         string   `json:"title" validate:"required"`
		Description   string   `json:"description"`
		Ingredients   []string `json:"ingredients" validate:"required,min=1,dive,required"`
		Instructions  []string `json:"instructions" validate:"required,min=1,dive,required"`
		CookingTime   int      `json:"cooking_time" validate:"required,gt=0"`
		Servings      int      `json:"servings" validate:"required,gt=0"`
		Status        string   `json:"status" validate:"omitempty,oneof=published draft"`
		CollectionIDs []string `json:"collection_ids" validate:"omitempty,dive,uuid"`
	}

	UpdateRecipeRequest struct {
		Title        *string  `json:"title" validate:"omitempty,min=1"`
		Description  *string  `json:"description"`
		Ingredients  []string `json:"ingredients" validate:"omitempty,min=1,dive,required"`
		Instructions []string `json:"instructions" validate:"omitempty,min=1,dive,required"`
		CookingTime  *int     `json:"cooking_time" validate:"omitempty,gt=0"`
		Servings     *int     `json:"servings" validate:"omitempty,gt=0"`
		Status       *string  `json:"status" validate:"omitempty,oneof=published draft"`
	}

	AddRecipePhotoRequest struct {
		PhotoURL   string `json:"photo_url" validate:"required"`
		IsPrimary  bool   `json:"is_primary"`
		StepNumber *int   `json:"step_number" validate:"omitempty,gt=0"`
	}

	SetRecipeTagsRequest struct {
		Tags []string `json:"tags" validate:"required,dive,required"`
	}

	RecipePhoto struct {
		ID         string `json:"id"`
		PhotoURL   string `json:"photo_url"`
		IsPrimary  bool   `json:"is_primary"`
		StepNumber *int   `json:"step_number,omitempty"`
	}

	RecipeAuthor struct {
		ID        string `json:"id"`
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url,omitempty"`
	}

	Recipe struct {
		ID           string        `json:"id"`
		Title        string        `json:"title"`
		Description  string        `json:"description"`
		Ingredients  []string      `json:"ingredients"`
		Instructions []string      `json:"instructions"`
		CookingTime  int           `json:"cooking_time"`
		Servings     int           `json:"servings"`
		Status       string        `json:"status"`
		Photos       []RecipePhoto `json:"photos"`
		Tags         []string      `json:"tags"`
		User         *RecipeAuthor `json:"user,omitempty"`
		CreatedAt    time.Time     `json:"created_at"`
		UpdatedAt    time.Time     `json:"updated_at"`
	}

	FavoriteStatus struct {
		Favorited bool `json:"favorited"`
	}
)

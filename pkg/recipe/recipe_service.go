package recipe

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"TasteBite-Backend/pkg/collection"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		GetRecipeDetail(ctx context.Context, recipeID string, callerID *uuid.UUID) (domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, ownerID uuid.UUID) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, ownerID uuid.UUID) error
		DeleteRecipe(ctx context.Context, recipeID string, ownerID uuid.UUID) error
		AddPhoto(ctx context.Context, recipeID string, req domain.AddRecipePhotoRequest, ownerID uuid.UUID) (domain.RecipePhoto, error)
		SetTags(ctx context.Context, recipeID string, req domain.SetRecipeTagsRequest, ownerID uuid.UUID) error
		ToggleFavorite(ctx context.Context, recipeID string, userID uuid.UUID) (bool, error)
		GetFavoriteStatus(ctx context.Context, recipeID string, userID uuid.UUID) (bool, error)
		GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]domain.Recipe, error)
		GetOwnRecipes(ctx context.Context, ownerID uuid.UUID) ([]domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		collectionRepository collection.CollectionRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, collectionRepository collection.CollectionRepository) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		collectionRepository: collectionRepository,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetPublishedRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return recipesToDomain(recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, callerID *uuid.UUID) (domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}

	// Drafts are visible to their owner only, reported as not found to
	// everyone else.
	if recipe.Status == entities.RecipeStatusDraft && (callerID == nil || *callerID != recipe.UserID) {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}

	return recipeToDomain(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, ownerID uuid.UUID) (domain.Recipe, error) {
	status := req.Status
	if status == "" {
		status = entities.RecipeStatusPublished
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       ownerID,
		Title:        req.Title,
		Description:  req.Description,
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		Status:       status,
		Ingredients:  entities.EncodeStringList(req.Ingredients),
		Instructions: entities.EncodeStringList(req.Instructions),
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	// Collection assignments are independent inserts after the recipe is
	// persisted. A failure here is reported as a distinct partial-failure
	// result; the recipe itself is never rolled back.
	for _, collectionID := range req.CollectionIDs {
		collectionUUID, err := uuid.Parse(collectionID)
		if err != nil {
			return recipeToDomain(recipe), fmt.Errorf("%w: %s", domain.ErrRecipeCollectionAssign, collectionID)
		}
		if err := s.collectionRepository.AddItem(ctx, collectionUUID, recipe.ID); err != nil {
			return recipeToDomain(recipe), fmt.Errorf("%w: %v", domain.ErrRecipeCollectionAssign, err)
		}
	}

	return recipeToDomain(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, ownerID uuid.UUID) error {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Ingredients != nil {
		fields["ingredients"] = entities.EncodeStringList(req.Ingredients)
	}
	if req.Instructions != nil {
		fields["instructions"] = entities.EncodeStringList(req.Instructions)
	}
	if req.CookingTime != nil {
		fields["cooking_time"] = *req.CookingTime
	}
	if req.Servings != nil {
		fields["servings"] = *req.Servings
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	affected, err := s.recipeRepository.UpdateRecipe(ctx, recipeID, ownerID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, ownerID uuid.UUID) error {
	affected, err := s.recipeRepository.DeleteRecipe(ctx, recipeID, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return nil
}

func (s *recipeService) AddPhoto(ctx context.Context, recipeID string, req domain.AddRecipePhotoRequest, ownerID uuid.UUID) (domain.RecipePhoto, error) {
	recipe, err := s.recipeRepository.GetRecipeOwned(ctx, recipeID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipePhoto{}, domain.ErrUnauthorizedRecipeAccess
		}
		return domain.RecipePhoto{}, err
	}

	photo := &entities.RecipePhoto{
		ID:         uuid.New(),
		RecipeID:   recipe.ID,
		PhotoURL:   req.PhotoURL,
		IsPrimary:  req.IsPrimary,
		StepNumber: req.StepNumber,
	}
	if err := s.recipeRepository.AddPhoto(ctx, photo); err != nil {
		return domain.RecipePhoto{}, err
	}
	return photoToDomain(*photo), nil
}

func (s *recipeService) SetTags(ctx context.Context, recipeID string, req domain.SetRecipeTagsRequest, ownerID uuid.UUID) error {
	recipe, err := s.recipeRepository.GetRecipeOwned(ctx, recipeID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnauthorizedRecipeAccess
		}
		return err
	}
	return s.recipeRepository.ReplaceTags(ctx, recipe, req.Tags)
}

func (s *recipeService) ToggleFavorite(ctx context.Context, recipeID string, userID uuid.UUID) (bool, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}
	return s.recipeRepository.ToggleFavorite(ctx, userID, recipe.ID)
}

func (s *recipeService) GetFavoriteStatus(ctx context.Context, recipeID string, userID uuid.UUID) (bool, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	return s.recipeRepository.IsFavorited(ctx, userID, recipeUUID)
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetFavoriteRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return recipesToDomain(recipes), nil
}

func (s *recipeService) GetOwnRecipes(ctx context.Context, ownerID uuid.UUID) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return recipesToDomain(recipes), nil
}

func recipesToDomain(recipes []*entities.Recipe) []domain.Recipe {
	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, recipeToDomain(recipe))
	}
	return result
}

func recipeToDomain(recipe *entities.Recipe) domain.Recipe {
	photos := make([]domain.RecipePhoto, 0, len(recipe.Photos))
	for _, photo := range recipe.Photos {
		photos = append(photos, photoToDomain(photo))
	}
	tags := make([]string, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, tag.Name)
	}

	result := domain.Recipe{
		ID:           recipe.ID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  entities.DecodeStringList(recipe.Ingredients),
		Instructions: entities.DecodeStringList(recipe.Instructions),
		CookingTime:  recipe.CookingTime,
		Servings:     recipe.Servings,
		Status:       recipe.Status,
		Photos:       photos,
		Tags:         tags,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
	if recipe.User != nil {
		result.User = &domain.RecipeAuthor{
			ID:        recipe.User.ID.String(),
			FullName:  recipe.User.FullName,
			AvatarURL: recipe.User.AvatarURL,
		}
	}
	return result
}

func photoToDomain(photo entities.RecipePhoto) domain.RecipePhoto {
	return domain.RecipePhoto{
		ID:         photo.ID.String(),
		PhotoURL:   photo.PhotoURL,
		IsPrimary:  photo.IsPrimary,
		StepNumber: photo.StepNumber,
	}
}

package collection

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionService interface {
		GetCollections(ctx context.Context, ownerID uuid.UUID) ([]domain.CollectionSummary, error)
		GetCollectionDetail(ctx context.Context, id string, callerID *uuid.UUID) (domain.CollectionDetail, error)
		CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, ownerID uuid.UUID) (domain.CollectionSummary, error)
		UpdateCollection(ctx context.Context, id string, req domain.UpdateCollectionRequest, ownerID uuid.UUID) error
		DeleteCollection(ctx context.Context, id string, ownerID uuid.UUID) error
		AddRecipe(ctx context.Context, id string, req domain.AddCollectionItemRequest, ownerID uuid.UUID) error
		RemoveRecipe(ctx context.Context, id, recipeID string, ownerID uuid.UUID) error
	}

	collectionService struct {
		collectionRepository CollectionRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository) CollectionService {
	return &collectionService{collectionRepository: collectionRepository}
}

func (s *collectionService) GetCollections(ctx context.Context, ownerID uuid.UUID) ([]domain.CollectionSummary, error) {
	collections, err := s.collectionRepository.GetCollectionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.CollectionSummary, 0, len(collections))
	for _, collection := range collections {
		result = append(result, summaryToDomain(collection))
	}
	return result, nil
}

func (s *collectionService) GetCollectionDetail(ctx context.Context, id string, callerID *uuid.UUID) (domain.CollectionDetail, error) {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CollectionDetail{}, domain.ErrCollectionNotFound
		}
		return domain.CollectionDetail{}, err
	}

	// Private collections are visible to their owner only. Reported as not
	// found so the endpoint does not leak existence.
	if !collection.IsPublic && (callerID == nil || *callerID != collection.UserID) {
		return domain.CollectionDetail{}, domain.ErrCollectionNotFound
	}

	detail := domain.CollectionDetail{
		CollectionSummary: summaryToDomain(collection),
		Recipes:           make([]domain.CollectionRecipeSummary, 0, len(collection.Items)),
	}
	for _, item := range collection.Items {
		if item.Recipe == nil {
			continue
		}
		summary := domain.CollectionRecipeSummary{
			ID:          item.Recipe.ID.String(),
			Title:       item.Recipe.Title,
			CookingTime: item.Recipe.CookingTime,
			Servings:    item.Recipe.Servings,
		}
		for _, photo := range item.Recipe.Photos {
			if photo.IsPrimary {
				summary.PhotoURL = photo.PhotoURL
				break
			}
		}
		if summary.PhotoURL == "" && len(item.Recipe.Photos) > 0 {
			summary.PhotoURL = item.Recipe.Photos[0].PhotoURL
		}
		detail.Recipes = append(detail.Recipes, summary)
	}
	return detail, nil
}

func (s *collectionService) CreateCollection(ctx context.Context, req domain.CreateCollectionRequest, ownerID uuid.UUID) (domain.CollectionSummary, error) {
	collection := &entities.Collection{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    true,
	}
	if req.IsPublic != nil {
		collection.IsPublic = *req.IsPublic
	}
	if err := s.collectionRepository.CreateCollection(ctx, collection); err != nil {
		return domain.CollectionSummary{}, err
	}
	return summaryToDomain(collection), nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, id string, req domain.UpdateCollectionRequest, ownerID uuid.UUID) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}

	affected, err := s.collectionRepository.UpdateCollection(ctx, id, ownerID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedCollectionAccess
	}
	return nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, id string, ownerID uuid.UUID) error {
	affected, err := s.collectionRepository.DeleteCollection(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedCollectionAccess
	}
	return nil
}

func (s *collectionService) AddRecipe(ctx context.Context, id string, req domain.AddCollectionItemRequest, ownerID uuid.UUID) error {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}
	if collection.UserID != ownerID {
		return domain.ErrUnauthorizedCollectionAccess
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.collectionRepository.AddItem(ctx, collection.ID, recipeUUID)
}

func (s *collectionService) RemoveRecipe(ctx context.Context, id, recipeID string, ownerID uuid.UUID) error {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollectionNotFound
		}
		return err
	}
	if collection.UserID != ownerID {
		return domain.ErrUnauthorizedCollectionAccess
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	affected, err := s.collectionRepository.RemoveItem(ctx, collection.ID, recipeUUID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func summaryToDomain(collection *entities.Collection) domain.CollectionSummary {
	return domain.CollectionSummary{
		ID:          collection.ID.String(),
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		CreatedAt:   collection.CreatedAt,
	}
}

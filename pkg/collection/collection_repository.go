package collection

import (
	"TasteBite-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error)
		GetCollectionsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Collection, error)
		UpdateCollection(ctx context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error)
		DeleteCollection(ctx context.Context, id string, ownerID uuid.UUID) (int64, error)

		AddItem(ctx context.Context, collectionID, recipeID uuid.UUID) error
		RemoveItem(ctx context.Context, collectionID, recipeID uuid.UUID) (int64, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).
		Preload("Items.Recipe.Photos").
		Where("id = ?", id).
		First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetCollectionsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name asc").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) UpdateCollection(ctx context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&entities.Collection{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, id string, ownerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.Collection{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).
		Where("collection_id = ?", id).
		Delete(&entities.CollectionItem{}).Error; err != nil {
		return res.RowsAffected, err
	}
	return res.RowsAffected, nil
}

func (r *collectionRepository) AddItem(ctx context.Context, collectionID, recipeID uuid.UUID) error {
	item := entities.CollectionItem{
		ID:           uuid.New(),
		CollectionID: collectionID,
		RecipeID:     recipeID,
		CreatedAt:    time.Now(),
	}
	return r.db.WithContext(ctx).Create(&item).Error
}

func (r *collectionRepository) RemoveItem(ctx context.Context, collectionID, recipeID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&entities.CollectionItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

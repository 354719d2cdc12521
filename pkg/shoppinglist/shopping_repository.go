package shoppinglist

import (
	"TasteBite-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		GetShoppingListsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ShoppingList, error)
		GetShoppingListOwned(ctx context.Context, id string, ownerID uuid.UUID) (*entities.ShoppingList, error)
		UpdateShoppingList(ctx context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error)
		DeleteShoppingList(ctx context.Context, id string, ownerID uuid.UUID) (int64, error)

		AddItems(ctx context.Context, items []entities.ShoppingListItem) error
		UpdateItem(ctx context.Context, itemID string, listID uuid.UUID, fields map[string]interface{}) (int64, error)
		DeleteItem(ctx context.Context, itemID string, listID uuid.UUID) (int64, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingListRepository) GetShoppingListsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) GetShoppingListOwned(ctx context.Context, id string, ownerID uuid.UUID) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shopping_list_items.created_at asc")
		}).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) UpdateShoppingList(ctx context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&entities.ShoppingList{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *shoppingListRepository) DeleteShoppingList(ctx context.Context, id string, ownerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.ShoppingList{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}
	if err := r.db.WithContext(ctx).
		Where("shopping_list_id = ?", id).
		Delete(&entities.ShoppingListItem{}).Error; err != nil {
		return res.RowsAffected, err
	}
	return res.RowsAffected, nil
}

func (r *shoppingListRepository) AddItems(ctx context.Context, items []entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *shoppingListRepository) UpdateItem(ctx context.Context, itemID string, listID uuid.UUID, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&entities.ShoppingListItem{}).
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, itemID string, listID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		Delete(&entities.ShoppingListItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

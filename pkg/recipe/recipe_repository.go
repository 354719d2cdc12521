package recipe

import (
	"TasteBite-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetPublishedRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Recipe, error)
		// UpdateRecipe and DeleteRecipe combine the id and owner predicates in
		// a single statement; the returned count is zero when the recipe does
		// not exist or the caller does not own it.
		UpdateRecipe(ctx context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error)
		DeleteRecipe(ctx context.Context, id string, ownerID uuid.UUID) (int64, error)
		GetRecipeOwned(ctx context.Context, id string, ownerID uuid.UUID) (*entities.Recipe, error)

		AddPhoto(ctx context.Context, photo *entities.RecipePhoto) error
		ReplaceTags(ctx context.Context, recipe *entities.Recipe, tags []string) error

		ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Tags").
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetPublishedRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Tags").
		Preload("User").
		Where("status = ?", entities.RecipeStatusPublished).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Tags").
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string, ownerID uuid.UUID) (int64, error) {
	// Owner check and delete in one statement, then cascade to dependents.
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entities.Recipe{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", id).Delete(&entities.RecipePhoto{}).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Where("recipe_id = ?", id).Delete(&entities.CollectionItem{}).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Exec("DELETE FROM comment_reactions WHERE comment_id IN (SELECT id FROM comments WHERE recipe_id = ?)", id).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Where("recipe_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Where("recipe_id = ?", id).Delete(&entities.Notification{}).Error; err != nil {
		return res.RowsAffected, err
	}
	return res.RowsAffected, nil
}

func (r *recipeRepository) GetRecipeOwned(ctx context.Context, id string, ownerID uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) AddPhoto(ctx context.Context, photo *entities.RecipePhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

// ReplaceTags fully substitutes the recipe's tag set. Tags are created by
// name on first use and shared across recipes.
func (r *recipeRepository) ReplaceTags(ctx context.Context, recipe *entities.Recipe, tags []string) error {
	resolved := make([]entities.Tag, 0, len(tags))
	for _, name := range tags {
		var tag entities.Tag
		if err := r.db.WithContext(ctx).
			Where(entities.Tag{Name: name}).
			Attrs(entities.Tag{ID: uuid.New()}).
			FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		resolved = append(resolved, tag)
	}

	// Stale join rows go first, then the new set. Replace, never union.
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipe.ID).Error; err != nil {
		return err
	}
	for _, tag := range resolved {
		if err := db.Exec("INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)", recipe.ID, tag.ID).Error; err != nil {
			return err
		}
	}
	recipe.Tags = resolved
	return nil
}

func (r *recipeRepository) ToggleFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var existing entities.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		if err := r.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	favorite := entities.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *recipeRepository) IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Tags").
		Preload("User").
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

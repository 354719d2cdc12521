package collection

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCollectionRepository struct {
	collections map[string]*entities.Collection

	updateAffected int64
	deleteAffected int64
	removeAffected int64
	added          [][2]uuid.UUID
}

func newFakeCollectionRepository() *fakeCollectionRepository {
	return &fakeCollectionRepository{collections: map[string]*entities.Collection{}}
}

func (f *fakeCollectionRepository) CreateCollection(_ context.Context, collection *entities.Collection) error {
	f.collections[collection.ID.String()] = collection
	return nil
}

func (f *fakeCollectionRepository) GetCollectionByID(_ context.Context, id string) (*entities.Collection, error) {
	if collection, ok := f.collections[id]; ok {
		return collection, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCollectionRepository) GetCollectionsByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Collection, error) {
	var collections []*entities.Collection
	for _, collection := range f.collections {
		if collection.UserID == ownerID {
			collections = append(collections, collection)
		}
	}
	return collections, nil
}

func (f *fakeCollectionRepository) UpdateCollection(_ context.Context, _ string, _ uuid.UUID, _ map[string]interface{}) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeCollectionRepository) DeleteCollection(_ context.Context, _ string, _ uuid.UUID) (int64, error) {
	return f.deleteAffected, nil
}

func (f *fakeCollectionRepository) AddItem(_ context.Context, collectionID, recipeID uuid.UUID) error {
	f.added = append(f.added, [2]uuid.UUID{collectionID, recipeID})
	return nil
}

func (f *fakeCollectionRepository) RemoveItem(_ context.Context, _, _ uuid.UUID) (int64, error) {
	return f.removeAffected, nil
}

func TestCreateCollectionDefaultsToPublic(t *testing.T) {
	repo := newFakeCollectionRepository()
	service := NewCollectionService(repo)

	created, err := service.CreateCollection(context.Background(), domain.CreateCollectionRequest{Name: "Weeknight"}, uuid.New())
	require.NoError(t, err)
	assert.True(t, created.IsPublic)

	private := false
	created, err = service.CreateCollection(context.Background(), domain.CreateCollectionRequest{Name: "Secret", IsPublic: &private}, uuid.New())
	require.NoError(t, err)
	assert.False(t, created.IsPublic)
}

func TestGetCollectionDetailPrivateVisibility(t *testing.T) {
	repo := newFakeCollectionRepository()
	ownerID := uuid.New()
	collection := &entities.Collection{
		ID:       uuid.New(),
		UserID:   ownerID,
		Name:     "Secret stash",
		IsPublic: false,
	}
	repo.collections[collection.ID.String()] = collection
	service := NewCollectionService(repo)

	// Anonymous and non-owner callers get not-found, never a hint that the
	// collection exists.
	_, err := service.GetCollectionDetail(context.Background(), collection.ID.String(), nil)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	otherID := uuid.New()
	_, err = service.GetCollectionDetail(context.Background(), collection.ID.String(), &otherID)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)

	detail, err := service.GetCollectionDetail(context.Background(), collection.ID.String(), &ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Secret stash", detail.Name)
}

func TestGetCollectionDetailPicksPrimaryPhoto(t *testing.T) {
	repo := newFakeCollectionRepository()
	ownerID := uuid.New()
	recipe := &entities.Recipe{
		ID:    uuid.New(),
		Title: "Ramen",
		Photos: []entities.RecipePhoto{
			{ID: uuid.New(), PhotoURL: "https://cdn.example.com/side.jpg"},
			{ID: uuid.New(), PhotoURL: "https://cdn.example.com/hero.jpg", IsPrimary: true},
		},
	}
	collection := &entities.Collection{
		ID:       uuid.New(),
		UserID:   ownerID,
		Name:     "Noodles",
		IsPublic: true,
		Items: []entities.CollectionItem{
			{ID: uuid.New(), RecipeID: recipe.ID, Recipe: recipe},
		},
	}
	repo.collections[collection.ID.String()] = collection
	service := NewCollectionService(repo)

	detail, err := service.GetCollectionDetail(context.Background(), collection.ID.String(), nil)
	require.NoError(t, err)
	require.Len(t, detail.Recipes, 1)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", detail.Recipes[0].PhotoURL)
}

func TestUpdateCollectionNotOwnedReportsNotFound(t *testing.T) {
	service := NewCollectionService(newFakeCollectionRepository())

	name := "renamed"
	err := service.UpdateCollection(context.Background(), uuid.New().String(), domain.UpdateCollectionRequest{Name: &name}, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCollectionAccess)
}

func TestAddRecipeRequiresOwnership(t *testing.T) {
	repo := newFakeCollectionRepository()
	ownerID := uuid.New()
	collection := &entities.Collection{ID: uuid.New(), UserID: ownerID, IsPublic: true}
	repo.collections[collection.ID.String()] = collection
	service := NewCollectionService(repo)

	req := domain.AddCollectionItemRequest{RecipeID: uuid.New().String()}

	err := service.AddRecipe(context.Background(), collection.ID.String(), req, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCollectionAccess)

	err = service.AddRecipe(context.Background(), collection.ID.String(), req, ownerID)
	require.NoError(t, err)
	require.Len(t, repo.added, 1)
}

func TestRemoveRecipeNotInCollection(t *testing.T) {
	repo := newFakeCollectionRepository()
	ownerID := uuid.New()
	collection := &entities.Collection{ID: uuid.New(), UserID: ownerID, IsPublic: true}
	repo.collections[collection.ID.String()] = collection
	service := NewCollectionService(repo)

	err := service.RemoveRecipe(context.Background(), collection.ID.String(), uuid.New().String(), ownerID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

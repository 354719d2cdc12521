package shoppinglist

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

type fakeShoppingListRepository struct {
	lists map[string]*entities.ShoppingList

	itemAffected int64
	addedItems   []entities.ShoppingListItem
}

func newFakeShoppingListRepository() *fakeShoppingListRepository {
	return &fakeShoppingListRepository{lists: map[string]*entities.ShoppingList{}}
}

func (f *fakeShoppingListRepository) CreateShoppingList(_ context.Context, list *entities.ShoppingList) error {
	f.lists[list.ID.String()] = list
	return nil
}

func (f *fakeShoppingListRepository) GetShoppingListsByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	for _, list := range f.lists {
		if list.UserID == ownerID {
			lists = append(lists, list)
		}
	}
	return lists, nil
}

func (f *fakeShoppingListRepository) GetShoppingListOwned(_ context.Context, id string, ownerID uuid.UUID) (*entities.ShoppingList, error) {
	list, ok := f.lists[id]
	if !ok || list.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (f *fakeShoppingListRepository) UpdateShoppingList(_ context.Context, id string, ownerID uuid.UUID, fields map[string]interface{}) (int64, error) {
	list, ok := f.lists[id]
	if !ok || list.UserID != ownerID {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		list.Name = name
	}
	return 1, nil
}

func (f *fakeShoppingListRepository) DeleteShoppingList(_ context.Context, id string, ownerID uuid.UUID) (int64, error) {
	list, ok := f.lists[id]
	if !ok || list.UserID != ownerID {
		return 0, nil
	}
	delete(f.lists, id)
	return 1, nil
}

func (f *fakeShoppingListRepository) AddItems(_ context.Context, items []entities.ShoppingListItem) error {
	f.addedItems = append(f.addedItems, items...)
	return nil
}

func (f *fakeShoppingListRepository) UpdateItem(_ context.Context, _ string, _ uuid.UUID, _ map[string]interface{}) (int64, error) {
	return f.itemAffected, nil
}

func (f *fakeShoppingListRepository) DeleteItem(_ context.Context, _ string, _ uuid.UUID) (int64, error) {
	return f.itemAffected, nil
}

func seedList(repo *fakeShoppingListRepository, ownerID uuid.UUID) *entities.ShoppingList {
	list := &entities.ShoppingList{ID: uuid.New(), UserID: ownerID, Name: "Groceries"}
	repo.lists[list.ID.String()] = list
	return list
}

func TestAddItemsRequiresOwnedList(t *testing.T) {
	repo := newFakeShoppingListRepository()
	ownerID := uuid.New()
	list := seedList(repo, ownerID)
	service := NewShoppingListService(repo)

	req := domain.AddShoppingListItemsRequest{
		Items: []domain.AddShoppingListItemRequest{{Ingredient: "eggs"}},
	}

	_, err := service.AddItems(context.Background(), list.ID.String(), req, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedListAccess)

	items, err := service.AddItems(context.Background(), list.ID.String(), req, ownerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "eggs", items[0].Ingredient)
	assert.False(t, items[0].Checked)
	require.Len(t, repo.addedItems, 1)
	assert.Equal(t, list.ID, repo.addedItems[0].ShoppingListID)
}

func TestAddItemsCarriesRecipeLink(t *testing.T) {
	repo := newFakeShoppingListRepository()
	ownerID := uuid.New()
	list := seedList(repo, ownerID)
	service := NewShoppingListService(repo)

	recipeID := uuid.New().String()
	quantity := "200g"
	req := domain.AddShoppingListItemsRequest{
		Items: []domain.AddShoppingListItemRequest{
			{Ingredient: "rice noodles", Quantity: &quantity, RecipeID: &recipeID},
		},
	}

	items, err := service.AddItems(context.Background(), list.ID.String(), req, ownerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].RecipeID)
	assert.Equal(t, recipeID, *items[0].RecipeID)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, "200g", *items[0].Quantity)
}

func TestUpdateItemUnknownItem(t *testing.T) {
	repo := newFakeShoppingListRepository()
	ownerID := uuid.New()
	list := seedList(repo, ownerID)
	service := NewShoppingListService(repo)

	checked := true
	err := service.UpdateItem(context.Background(), list.ID.String(), uuid.New().String(), domain.UpdateShoppingListItemRequest{Checked: &checked}, ownerID)
	assert.ErrorIs(t, err, domain.ErrShoppingListItemNotFound)
}

func TestDeleteListNotOwned(t *testing.T) {
	repo := newFakeShoppingListRepository()
	list := seedList(repo, uuid.New())
	service := NewShoppingListService(repo)

	err := service.DeleteShoppingList(context.Background(), list.ID.String(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedListAccess)
}

func TestFormatExport(t *testing.T) {
	quantity := "2kg"
	list := &entities.ShoppingList{
		Name: "Weekend",
		Items: []entities.ShoppingListItem{
			{Ingredient: "potatoes", Quantity: &quantity, Checked: true},
			{Ingredient: "rosemary"},
		},
	}

	expected := "Weekend\n" +
		"=======\n" +
		"- [x] potatoes (2kg)\n" +
		"- [ ] rosemary\n"
	assert.Equal(t, expected, FormatExport(list))
}

func TestFormatExportEmptyList(t *testing.T) {
	list := &entities.ShoppingList{Name: "Empty"}
	assert.Equal(t, "Empty\n=====\n", FormatExport(list))
}

func TestExportShoppingListUnknownList(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())

	_, err := service.ExportShoppingList(context.Background(), uuid.New().String(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}

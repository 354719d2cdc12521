package shoppinglist

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		GetShoppingLists(ctx context.Context, ownerID uuid.UUID) ([]domain.ShoppingList, error)
		GetShoppingList(ctx context.Context, id string, ownerID uuid.UUID) (domain.ShoppingList, error)
		CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest, ownerID uuid.UUID) (domain.ShoppingList, error)
		UpdateShoppingList(ctx context.Context, id string, req domain.UpdateShoppingListRequest, ownerID uuid.UUID) error
		DeleteShoppingList(ctx context.Context, id string, ownerID uuid.UUID) error
		AddItems(ctx context.Context, id string, req domain.AddShoppingListItemsRequest, ownerID uuid.UUID) ([]domain.ShoppingListItem, error)
		UpdateItem(ctx context.Context, id, itemID string, req domain.UpdateShoppingListItemRequest, ownerID uuid.UUID) error
		DeleteItem(ctx context.Context, id, itemID string, ownerID uuid.UUID) error
		ExportShoppingList(ctx context.Context, id string, ownerID uuid.UUID) (domain.ShoppingListExport, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{shoppingListRepository: shoppingListRepository}
}

func (s *shoppingListService) GetShoppingLists(ctx context.Context, ownerID uuid.UUID) ([]domain.ShoppingList, error) {
	lists, err := s.shoppingListRepository.GetShoppingListsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.ShoppingList, 0, len(lists))
	for _, list := range lists {
		result = append(result, listToDomain(list))
	}
	return result, nil
}

func (s *shoppingListService) GetShoppingList(ctx context.Context, id string, ownerID uuid.UUID) (domain.ShoppingList, error) {
	list, err := s.shoppingListRepository.GetShoppingListOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingList{}, domain.ErrShoppingListNotFound
		}
		return domain.ShoppingList{}, err
	}
	return listToDomain(list), nil
}

func (s *shoppingListService) CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest, ownerID uuid.UUID) (domain.ShoppingList, error) {
	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: ownerID,
		Name:   req.Name,
	}
	if err := s.shoppingListRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingList{}, err
	}
	return listToDomain(list), nil
}

func (s *shoppingListService) UpdateShoppingList(ctx context.Context, id string, req domain.UpdateShoppingListRequest, ownerID uuid.UUID) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}

	affected, err := s.shoppingListRepository.UpdateShoppingList(ctx, id, ownerID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedListAccess
	}
	return nil
}

func (s *shoppingListService) DeleteShoppingList(ctx context.Context, id string, ownerID uuid.UUID) error {
	affected, err := s.shoppingListRepository.DeleteShoppingList(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedListAccess
	}
	return nil
}

func (s *shoppingListService) AddItems(ctx context.Context, id string, req domain.AddShoppingListItemsRequest, ownerID uuid.UUID) ([]domain.ShoppingListItem, error) {
	list, err := s.shoppingListRepository.GetShoppingListOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnauthorizedListAccess
		}
		return nil, err
	}

	items := make([]entities.ShoppingListItem, 0, len(req.Items))
	for _, item := range req.Items {
		entry := entities.ShoppingListItem{
			ID:             uuid.New(),
			ShoppingListID: list.ID,
			Ingredient:     item.Ingredient,
			Quantity:       item.Quantity,
		}
		if item.RecipeID != nil {
			recipeUUID, err := uuid.Parse(*item.RecipeID)
			if err != nil {
				return nil, domain.ErrParseUUID
			}
			entry.RecipeID = &recipeUUID
		}
		items = append(items, entry)
	}
	if err := s.shoppingListRepository.AddItems(ctx, items); err != nil {
		return nil, err
	}

	result := make([]domain.ShoppingListItem, 0, len(items))
	for _, item := range items {
		result = append(result, itemToDomain(item))
	}
	return result, nil
}

func (s *shoppingListService) UpdateItem(ctx context.Context, id, itemID string, req domain.UpdateShoppingListItemRequest, ownerID uuid.UUID) error {
	list, err := s.shoppingListRepository.GetShoppingListOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnauthorizedListAccess
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.Ingredient != nil {
		fields["ingredient"] = *req.Ingredient
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Checked != nil {
		fields["checked"] = *req.Checked
	}

	affected, err := s.shoppingListRepository.UpdateItem(ctx, itemID, list.ID, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrShoppingListItemNotFound
	}
	return nil
}

func (s *shoppingListService) DeleteItem(ctx context.Context, id, itemID string, ownerID uuid.UUID) error {
	list, err := s.shoppingListRepository.GetShoppingListOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUnauthorizedListAccess
		}
		return err
	}

	affected, err := s.shoppingListRepository.DeleteItem(ctx, itemID, list.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrShoppingListItemNotFound
	}
	return nil
}

func (s *shoppingListService) ExportShoppingList(ctx context.Context, id string, ownerID uuid.UUID) (domain.ShoppingListExport, error) {
	list, err := s.shoppingListRepository.GetShoppingListOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListExport{}, domain.ErrShoppingListNotFound
		}
		return domain.ShoppingListExport{}, err
	}
	return domain.ShoppingListExport{Text: FormatExport(list)}, nil
}

// FormatExport renders a shopping list as plain text for clipboard sharing.
func FormatExport(list *entities.ShoppingList) string {
	var b strings.Builder
	b.WriteString(list.Name)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(list.Name)))
	b.WriteString("\n")
	for _, item := range list.Items {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		if item.Quantity != nil && *item.Quantity != "" {
			fmt.Fprintf(&b, "- [%s] %s (%s)\n", mark, item.Ingredient, *item.Quantity)
		} else {
			fmt.Fprintf(&b, "- [%s] %s\n", mark, item.Ingredient)
		}
	}
	return b.String()
}

func listToDomain(list *entities.ShoppingList) domain.ShoppingList {
	items := make([]domain.ShoppingListItem, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, itemToDomain(item))
	}
	return domain.ShoppingList{
		ID:        list.ID.String(),
		Name:      list.Name,
		Items:     items,
		CreatedAt: list.CreatedAt,
	}
}

func itemToDomain(item entities.ShoppingListItem) domain.ShoppingListItem {
	result := domain.ShoppingListItem{
		ID:         item.ID.String(),
		Ingredient: item.Ingredient,
		Quantity:   item.Quantity,
		Checked:    item.Checked,
	}
	if item.RecipeID != nil {
		recipeID := item.RecipeID.String()
		result.RecipeID = &recipeID
	}
	return result
}

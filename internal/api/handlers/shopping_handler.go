package handlers

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/internal/api/presenters"
	"TasteBite-Backend/pkg/shoppinglist"
	"TasteBite-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetShoppingLists(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		CreateShoppingList(c *fiber.Ctx) error
		UpdateShoppingList(c *fiber.Ctx) error
		DeleteShoppingList(c *fiber.Ctx) error
		AddItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		ExportShoppingList(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		userService         user.UserService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, userService user.UserService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		userService:         userService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) GetShoppingLists(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingLists, err)
	}

	res, err := h.shoppingListService.GetShoppingLists(c.Context(), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingLists, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingListHandler) GetShoppingList(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.shoppingListService.GetShoppingList(c.Context(), c.Params("id"), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) CreateShoppingList(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateShoppingList, err)
	}

	req := new(domain.CreateShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateShoppingList, err)
	}

	res, err := h.shoppingListService.CreateShoppingList(c.Context(), *req, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateShoppingList)
}

func (h *shoppingListHandler) UpdateShoppingList(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateShoppingList, err)
	}

	req := new(domain.UpdateShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingList, err)
	}

	if err := h.shoppingListService.UpdateShoppingList(c.Context(), c.Params("id"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateShoppingList, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateShoppingList)
}

func (h *shoppingListHandler) DeleteShoppingList(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteShoppingList, err)
	}

	if err := h.shoppingListService.DeleteShoppingList(c.Context(), c.Params("id"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteShoppingList, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingList)
}

func (h *shoppingListHandler) AddItems(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddListItems, err)
	}

	req := new(domain.AddShoppingListItemsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItems, err)
	}

	res, err := h.shoppingListService.AddItems(c.Context(), c.Params("id"), *req, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddListItems, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListItems)
}

func (h *shoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateListItem, err)
	}

	req := new(domain.UpdateShoppingListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, err)
	}

	if err := h.shoppingListService.UpdateItem(c.Context(), c.Params("id"), c.Params("itemId"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateListItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateListItem)
}

func (h *shoppingListHandler) DeleteItem(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteListItem, err)
	}

	if err := h.shoppingListService.DeleteItem(c.Context(), c.Params("id"), c.Params("itemId"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteListItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteListItem)
}

func (h *shoppingListHandler) ExportShoppingList(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedExportList, err)
	}

	res, err := h.shoppingListService.ExportShoppingList(c.Context(), c.Params("id"), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedExportList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExportList)
}

package handlers

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/internal/api/presenters"
	"TasteBite-Backend/pkg/collection"
	"TasteBite-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		GetCollections(c *fiber.Ctx) error
		GetCollectionDetail(c *fiber.Ctx) error
		CreateCollection(c *fiber.Ctx) error
		UpdateCollection(c *fiber.Ctx) error
		DeleteCollection(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		RemoveRecipe(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		userService       user.UserService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, userService user.UserService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		userService:       userService,
		validator:         validator,
	}
}

func (h *collectionHandler) GetCollections(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCollections, err)
	}

	res, err := h.collectionService.GetCollections(c.Context(), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCollections, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) GetCollectionDetail(c *fiber.Ctx) error {
	callerID := optionalCaller(c, h.userService)

	res, err := h.collectionService.GetCollectionDetail(c.Context(), c.Params("id"), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCollectionDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollectionDetail)
}

func (h *collectionHandler) CreateCollection(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateCollection, err)
	}

	req := new(domain.CreateCollectionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	res, err := h.collectionService.CreateCollection(c.Context(), *req, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateCollection, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCollection)
}

func (h *collectionHandler) UpdateCollection(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateCollection, err)
	}

	req := new(domain.UpdateCollectionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	if err := h.collectionService.UpdateCollection(c.Context(), c.Params("id"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateCollection, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *collectionHandler) DeleteCollection(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteCollection, err)
	}

	if err := h.collectionService.DeleteCollection(c.Context(), c.Params("id"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteCollection, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}

func (h *collectionHandler) AddRecipe(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddCollectionItem, err)
	}

	req := new(domain.AddCollectionItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCollectionItem, err)
	}

	if err := h.collectionService.AddRecipe(c.Context(), c.Params("id"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddCollectionItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddCollectionItem)
}

func (h *collectionHandler) RemoveRecipe(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveItem, err)
	}

	if err := h.collectionService.RemoveRecipe(c.Context(), c.Params("id"), c.Params("recipeId"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveItem)
}

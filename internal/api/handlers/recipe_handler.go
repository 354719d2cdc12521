package handlers

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/internal/api/presenters"
	"TasteBite-Backend/pkg/recipe"
	"TasteBite-Backend/pkg/user"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetOwnRecipes(c *fiber.Ctx) error
		GetFavoriteRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		AddPhoto(c *fiber.Ctx) error
		SetTags(c *fiber.Ctx) error
		ToggleFavorite(c *fiber.Ctx) error
		GetFavoriteStatus(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		userService   user.UserService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, userService user.UserService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		userService:   userService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetOwnRecipes(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetOwnRecipes(c.Context(), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetFavoriteRecipes(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}

	res, err := h.recipeService.GetFavoriteRecipes(c.Context(), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	callerID := optionalCaller(c, h.userService)

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}

	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, callerID)
	if err != nil {
		// The recipe row exists even when collection assignment failed, so
		// the partial-failure response still carries it.
		if errors.Is(err, domain.ErrRecipeCollectionAssign) {
			return c.Status(fiber.StatusInternalServerError).JSON(presenters.Response{
				Status:  false,
				Message: domain.MessagePartialCollections,
				Data:    res,
				Error:   err.Error(),
			})
		}
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) AddPhoto(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddPhoto, err)
	}

	req := new(domain.AddRecipePhotoRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPhoto, err)
	}

	res, err := h.recipeService.AddPhoto(c.Context(), c.Params("id"), *req, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddPhoto, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPhoto)
}

func (h *recipeHandler) SetTags(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSetTags, err)
	}

	req := new(domain.SetRecipeTagsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetTags, err)
	}

	if err := h.recipeService.SetTags(c.Context(), c.Params("id"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSetTags, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetTags)
}

func (h *recipeHandler) ToggleFavorite(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleFavorite, err)
	}

	favorited, err := h.recipeService.ToggleFavorite(c.Context(), c.Params("id"), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleFavorite, err)
	}
	return presenters.SuccessResponse(c, domain.FavoriteStatus{Favorited: favorited}, fiber.StatusOK, domain.MessageSuccessToggleFavorite)
}

func (h *recipeHandler) GetFavoriteStatus(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}

	favorited, err := h.recipeService.GetFavoriteStatus(c.Context(), c.Params("id"), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}
	return presenters.SuccessResponse(c, domain.FavoriteStatus{Favorited: favorited}, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

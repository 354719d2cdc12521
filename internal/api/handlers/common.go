package handlers

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/pkg/user"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// resolveCaller maps the identity-provider user id stored by the auth
// middleware to the caller's internal profile id, creating the profile row
// on first use.
func resolveCaller(c *fiber.Ctx, userService user.UserService) (uuid.UUID, error) {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return uuid.Nil, domain.ErrTokenNotFound
	}
	fullName, _ := c.Locals("full_name").(string)
	email, _ := c.Locals("email").(string)

	profile, err := userService.EnsureProfile(c.Context(), userID, fullName, email)
	if err != nil {
		return uuid.Nil, err
	}
	return profile.ID, nil
}

// optionalCaller is resolveCaller for routes that serve anonymous requests
// too. Anonymous callers resolve to nil.
func optionalCaller(c *fiber.Ctx, userService user.UserService) *uuid.UUID {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return nil
	}
	id, err := resolveCaller(c, userService)
	if err != nil {
		return nil
	}
	return &id
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrCollectionNotFound),
		errors.Is(err, domain.ErrUnauthorizedCollectionAccess),
		errors.Is(err, domain.ErrShoppingListNotFound),
		errors.Is(err, domain.ErrUnauthorizedListAccess),
		errors.Is(err, domain.ErrShoppingListItemNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrUnauthorizedCommentAccess),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrReplyToReply),
		errors.Is(err, domain.ErrPhotoURLRequired),
		errors.Is(err, domain.ErrFileRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrPinNotRecipeOwner):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

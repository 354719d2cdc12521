package handlers

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/internal/api/presenters"
	"TasteBite-Backend/pkg/notification"
	"TasteBite-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		UpdateNotification(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		userService         user.UserService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, userService user.UserService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		userService:         userService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNotifications, err)
	}

	res, err := h.notificationService.GetNotifications(c.Context(), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNotifications, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) UpdateNotification(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateNotification, err)
	}

	req := new(domain.UpdateNotificationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotification, err)
	}

	if err := h.notificationService.UpdateNotification(c.Context(), c.Params("id"), *req, callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateNotification, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateNotification)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteNotification, err)
	}

	if err := h.notificationService.DeleteNotification(c.Context(), c.Params("id"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteNotification, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotification)
}

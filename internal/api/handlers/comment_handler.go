package handlers

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/internal/api/presenters"
	"TasteBite-Backend/pkg/comment"
	"TasteBite-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		GetComments(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		ToggleReaction(c *fiber.Ctx) error
		TogglePin(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		userService    user.UserService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, userService user.UserService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		userService:    userService,
		validator:      validator,
	}
}

func (h *commentHandler) GetComments(c *fiber.Ctx) error {
	res, err := h.commentService.GetComments(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetComments, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) AddComment(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddComment, err)
	}

	req := new(domain.AddCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.commentService.AddComment(c.Context(), c.Params("id"), *req, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddComment, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteComment, err)
	}

	if err := h.commentService.DeleteComment(c.Context(), c.Params("commentId"), callerID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *commentHandler) ToggleReaction(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleReaction, err)
	}

	req := new(domain.ToggleReactionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleReaction, err)
	}

	reacted, err := h.commentService.ToggleReaction(c.Context(), c.Params("commentId"), req.Emoji, callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleReaction, err)
	}
	return presenters.SuccessResponse(c, domain.ReactionStatus{Reacted: reacted}, fiber.StatusOK, domain.MessageSuccessToggleReaction)
}

func (h *commentHandler) TogglePin(c *fiber.Ctx) error {
	callerID, err := resolveCaller(c, h.userService)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedTogglePin, err)
	}

	pinned, err := h.commentService.TogglePin(c.Context(), c.Params("id"), c.Params("commentId"), callerID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedTogglePin, err)
	}
	return presenters.SuccessResponse(c, domain.PinStatus{Pinned: pinned}, fiber.StatusOK, domain.MessageSuccessTogglePin)
}

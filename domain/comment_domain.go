package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetComments    = "success get comments"
	MessageSuccessAddComment     = "comment added successfully"
	MessageSuccessDeleteComment  = "comment deleted successfully"
	MessageSuccessToggleReaction = "reaction toggled successfully"
	MessageSuccessTogglePin      = "pin toggled successfully"

	MessageFailedGetComments    = "failed to get comments"
	MessageFailedAddComment     = "failed to add comment"
	MessageFailedDeleteComment  = "failed to delete comment"
	MessageFailedToggleReaction = "failed to toggle reaction"
	MessageFailedTogglePin      = "failed to toggle pin"

	ErrCommentNotFound           = errors.New("comment not found")
	ErrUnauthorizedCommentAccess = errors.New("comment not found or not owned by caller")
	ErrReplyToReply              = errors.New("replies cannot be nested further")
	ErrPinNotRecipeOwner         = errors.New("only the recipe owner can pin comments")
)

type (
	AddCommentRequest struct {
		Content         string   `json:"content" validate:"required"`
		Rating          *int     `json:"rating" validate:"omitempty,min=1,max=5"`
		ParentCommentID *string  `json:"parent_comment_id" validate:"omitempty,uuid"`
		MentionedUsers  []string `json:"mentioned_user_ids" validate:"omitempty,dive,uuid"`
	}

	ToggleReactionRequest struct {
		Emoji string `json:"emoji" validate:"required"`
	}

	ReactionSummary struct {
		Emoji string         `json:"emoji"`
		Count int            `json:"count"`
		Users []RecipeAuthor `json:"users"`
	}

	Comment struct {
		ID        string            `json:"id"`
		Content   string            `json:"content"`
		Rating    *int              `json:"rating,omitempty"`
		Pinned    bool              `json:"pinned"`
		User      *RecipeAuthor     `json:"user,omitempty"`
		Reactions []ReactionSummary `json:"reactions"`
		Replies   []Comment         `json:"replies,omitempty"`
		CreatedAt time.Time         `json:"created_at"`
	}

	ReactionStatus struct {
		Reacted bool `json:"reacted"`
	}

	PinStatus struct {
		Pinned bool `json:"pinned"`
	}
)

package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications   = "success get notifications"
	MessageSuccessUpdateNotification = "notification updated successfully"
	MessageSuccessDeleteNotification = "notification deleted successfully"

	MessageFailedGetNotifications   = "failed to get notifications"
	MessageFailedUpdateNotification = "failed to update notification"
	MessageFailedDeleteNotification = "failed to delete notification"

	ErrNotificationNotFound = errors.New("notification not found or not owned by caller")
)

type (
	UpdateNotificationRequest struct {
		Read *bool `json:"read"`
	}

	Notification struct {
		ID        string        `json:"id"`
		Type      string        `json:"type"`
		Actor     *RecipeAuthor `json:"actor,omitempty"`
		RecipeID  *string       `json:"recipe_id,omitempty"`
		CommentID *string       `json:"comment_id,omitempty"`
		Read      bool          `json:"read"`
		CreatedAt time.Time     `json:"created_at"`
	}
)

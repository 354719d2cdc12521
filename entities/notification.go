package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeComment  = "comment"
	NotificationTypeReply    = "reply"
	NotificationTypeMention  = "mention"
	NotificationTypeReaction = "reaction"
	NotificationTypePin      = "pin"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `json:"user_id"` // recipient
	Type      string     `json:"type"`
	ActorID   uuid.UUID  `json:"actor_id"`
	RecipeID  *uuid.UUID `json:"recipe_id,omitempty"`
	CommentID *uuid.UUID `json:"comment_id,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `gorm:"type:timestamp" json:"created_at"`

	Actor *UserProfile `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

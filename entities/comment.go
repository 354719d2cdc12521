package entities

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID  `json:"recipe_id"`
	UserID   uuid.UUID  `json:"user_id"`
	Content  string     `gorm:"type:text" json:"content"`
	Rating   *int       `json:"rating,omitempty"` // 1-5, top-level comments only
	Pinned   bool       `json:"pinned"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"` // one level of replies

	User      *UserProfile      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Replies   []Comment         `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	Reactions []CommentReaction `gorm:"foreignKey:CommentID" json:"reactions,omitempty"`

	Timestamp
}

type CommentReaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CommentID uuid.UUID `json:"comment_id"`
	UserID    uuid.UUID `json:"user_id"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *UserProfile `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

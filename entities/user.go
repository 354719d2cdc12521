package entities

import (
	"github.com/google/uuid"
)

type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    string    `gorm:"uniqueIndex" json:"user_id"` // stable id from the identity provider
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	Bio            *string `json:"bio"`
	WebsiteURL     *string `json:"website_url"`
	TwitterURL     *string `json:"twitter_url"`
	InstagramURL   *string `json:"instagram_url"`
	FacebookURL    *string `json:"facebook_url"`
	ExpertiseLevel *string `json:"expertise_level"`

	// JSON-encoded string lists, decoded at the service layer.
	DietaryPreferences string `gorm:"type:text" json:"-"`
	FavoriteCuisines   string `gorm:"type:text" json:"-"`

	Timestamp
}

type UserPreferences struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID               string    `gorm:"uniqueIndex" json:"user_id"`
	NotificationEmail    bool      `json:"notification_email"`
	NotificationWeb      bool      `json:"notification_web"`
	NotificationMobile   bool      `json:"notification_mobile"`
	EmailDigestFrequency string    `json:"email_digest_frequency"`
	Theme                string    `json:"theme"`
	Language             string    `json:"language"`

	Timestamp
}

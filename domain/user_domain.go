package domain

import (
	"errors"
)

var (
	MessageSuccessGetProfile        = "success get profile"
	MessageSuccessUpdateProfile     = "profile updated successfully"
	MessageSuccessGetPreferences    = "success get preferences"
	MessageSuccessUpdatePreferences = "preferences updated successfully"
	MessageSuccessGetStats          = "success get user stats"
	MessageSuccessUpload            = "file uploaded successfully"

	MessageFailedGetProfile        = "failed to get profile"
	MessageFailedUpdateProfile     = "failed to update profile"
	MessageFailedGetPreferences    = "failed to get preferences"
	MessageFailedUpdatePreferences = "failed to update preferences"
	MessageFailedGetStats          = "failed to get user stats"
	MessageFailedUpload            = "failed to upload file"

	ErrProfileNotFound = errors.New("user profile not found")
	ErrFileRequired    = errors.New("file is required")
)

type (
	// UserProfile mirrors the documented default-on-missing object: every
	// field nullable, list fields empty but non-nil.
	UserProfile struct {
		Bio                *string  `json:"bio"`
		WebsiteURL         *string  `json:"website_url"`
		TwitterURL         *string  `json:"twitter_url"`
		InstagramURL       *string  `json:"instagram_url"`
		FacebookURL        *string  `json:"facebook_url"`
		ExpertiseLevel     *string  `json:"expertise_level"`
		DietaryPreferences []string `json:"dietary_preferences"`
		FavoriteCuisines   []string `json:"favorite_cuisines"`
	}

	UpdateUserProfileRequest struct {
		FullName           *string  `json:"full_name"`
		AvatarURL          *string  `json:"avatar_url"`
		Bio                *string  `json:"bio"`
		WebsiteURL         *string  `json:"website_url" validate:"omitempty,url"`
		TwitterURL         *string  `json:"twitter_url" validate:"omitempty,url"`
		InstagramURL       *string  `json:"instagram_url" validate:"omitempty,url"`
		FacebookURL        *string  `json:"facebook_url" validate:"omitempty,url"`
		ExpertiseLevel     *string  `json:"expertise_level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
		DietaryPreferences []string `json:"dietary_preferences"`
		FavoriteCuisines   []string `json:"favorite_cuisines"`
	}

	UserPreferences struct {
		NotificationEmail    bool   `json:"notification_email"`
		NotificationWeb      bool   `json:"notification_web"`
		NotificationMobile   bool   `json:"notification_mobile"`
		EmailDigestFrequency string `json:"email_digest_frequency"`
		Theme                string `json:"theme"`
		Language             string `json:"language"`
	}

	UpdateUserPreferencesRequest struct {
		NotificationEmail    *bool   `json:"notification_email"`
		NotificationWeb      *bool   `json:"notification_web"`
		NotificationMobile   *bool   `json:"notification_mobile"`
		EmailDigestFrequency *string `json:"email_digest_frequency" validate:"omitempty,oneof=daily weekly monthly never"`
		Theme                *string `json:"theme" validate:"omitempty,oneof=light dark system"`
		Language             *string `json:"language" validate:"omitempty,min=2,max=5"`
	}

	MonthlyCount struct {
		Month string `json:"month"` // "2006-01"
		Count int    `json:"count"`
	}

	UserStats struct {
		RecipeCount      int            `json:"recipe_count"`
		FavoritesCount   int            `json:"favorites_count"`
		CommentsReceived int            `json:"comments_received"`
		RecipesPerMonth  []MonthlyCount `json:"recipes_per_month"`
	}

	UploadResponse struct {
		URL string `json:"url"`
	}
)

// DefaultUserProfile is returned when no profile row exists yet.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		DietaryPreferences: []string{},
		FavoriteCuisines:   []string{},
	}
}

// DefaultUserPreferences is returned when no preferences row exists yet.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		NotificationEmail:    true,
		NotificationWeb:      true,
		NotificationMobile:   true,
		EmailDigestFrequency: "daily",
		Theme:                "light",
		Language:             "en",
	}
}

package user

import (
	"TasteBite-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		EnsureProfile(ctx context.Context, userID, fullName, email string) (*entities.UserProfile, error)
		GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)
		GetProfileByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error)
		SaveProfile(ctx context.Context, profile *entities.UserProfile) error
		GetPreferencesByUserID(ctx context.Context, userID string) (*entities.UserPreferences, error)
		SavePreferences(ctx context.Context, preferences *entities.UserPreferences) error

		GetRecipeCreationTimes(ctx context.Context, ownerID uuid.UUID) ([]time.Time, error)
		CountRecipesByUser(ctx context.Context, ownerID uuid.UUID) (int64, error)
		CountFavoritesReceived(ctx context.Context, ownerID uuid.UUID) (int64, error)
		CountCommentsReceived(ctx context.Context, ownerID uuid.UUID) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// EnsureProfile lazily creates the internal profile row for an identity the
// first time an authenticated flow needs it.
func (r *userRepository) EnsureProfile(ctx context.Context, userID, fullName, email string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).
		Where(entities.UserProfile{UserID: userID}).
		Attrs(entities.UserProfile{
			ID:       uuid.New(),
			FullName: fullName,
			Email:    email,
		}).
		FirstOrCreate(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) SaveProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *userRepository) GetPreferencesByUserID(ctx context.Context, userID string) (*entities.UserPreferences, error) {
	var preferences entities.UserPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&preferences).Error; err != nil {
		return nil, err
	}
	return &preferences, nil
}

func (r *userRepository) SavePreferences(ctx context.Context, preferences *entities.UserPreferences) error {
	return r.db.WithContext(ctx).Save(preferences).Error
}

func (r *userRepository) GetRecipeCreationTimes(ctx context.Context, ownerID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", ownerID).
		Order("created_at asc").
		Pluck("created_at", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *userRepository) CountRecipesByUser(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CountFavoritesReceived(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Joins("JOIN recipes ON recipes.id = favorites.recipe_id").
		Where("recipes.user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CountCommentsReceived(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Joins("JOIN recipes ON recipes.id = comments.recipe_id").
		Where("recipes.user_id = ? AND comments.user_id <> ?", ownerID, ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

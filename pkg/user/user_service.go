package user

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	UserService interface {
		// EnsureProfile resolves the caller's internal profile row, creating
		// it on first authenticated use.
		EnsureProfile(ctx context.Context, userID, fullName, email string) (*entities.UserProfile, error)
		GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateProfile(ctx context.Context, req domain.UpdateUserProfileRequest, userID string) (domain.UserProfile, error)
		GetPreferences(ctx context.Context, userID string) (domain.UserPreferences, error)
		UpdatePreferences(ctx context.Context, req domain.UpdateUserPreferencesRequest, userID string) (domain.UserPreferences, error)
		GetStats(ctx context.Context, userID string) (domain.UserStats, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) EnsureProfile(ctx context.Context, userID, fullName, email string) (*entities.UserProfile, error) {
	return s.userRepository.EnsureProfile(ctx, userID, fullName, email)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultUserProfile(), nil
		}
		return domain.UserProfile{}, err
	}
	return profileToDomain(profile), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateUserProfileRequest, userID string) (domain.UserProfile, error) {
	profile, err := s.userRepository.EnsureProfile(ctx, userID, "", "")
	if err != nil {
		return domain.UserProfile{}, err
	}

	// Merge semantics: only supplied fields change.
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.WebsiteURL != nil {
		profile.WebsiteURL = req.WebsiteURL
	}
	if req.TwitterURL != nil {
		profile.TwitterURL = req.TwitterURL
	}
	if req.InstagramURL != nil {
		profile.InstagramURL = req.InstagramURL
	}
	if req.FacebookURL != nil {
		profile.FacebookURL = req.FacebookURL
	}
	if req.ExpertiseLevel != nil {
		profile.ExpertiseLevel = req.ExpertiseLevel
	}
	if req.DietaryPreferences != nil {
		profile.DietaryPreferences = entities.EncodeStringList(req.DietaryPreferences)
	}
	if req.FavoriteCuisines != nil {
		profile.FavoriteCuisines = entities.EncodeStringList(req.FavoriteCuisines)
	}

	if err := s.userRepository.SaveProfile(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profileToDomain(profile), nil
}

func (s *userService) GetPreferences(ctx context.Context, userID string) (domain.UserPreferences, error) {
	preferences, err := s.userRepository.GetPreferencesByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultUserPreferences(), nil
		}
		return domain.UserPreferences{}, err
	}
	return preferencesToDomain(preferences), nil
}

func (s *userService) UpdatePreferences(ctx context.Context, req domain.UpdateUserPreferencesRequest, userID string) (domain.UserPreferences, error) {
	preferences, err := s.userRepository.GetPreferencesByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserPreferences{}, err
		}
		// First write creates the row from the documented defaults.
		defaults := domain.DefaultUserPreferences()
		preferences = &entities.UserPreferences{
			UserID:               userID,
			NotificationEmail:    defaults.NotificationEmail,
			NotificationWeb:      defaults.NotificationWeb,
			NotificationMobile:   defaults.NotificationMobile,
			EmailDigestFrequency: defaults.EmailDigestFrequency,
			Theme:                defaults.Theme,
			Language:             defaults.Language,
		}
	}

	if req.NotificationEmail != nil {
		preferences.NotificationEmail = *req.NotificationEmail
	}
	if req.NotificationWeb != nil {
		preferences.NotificationWeb = *req.NotificationWeb
	}
	if req.NotificationMobile != nil {
		preferences.NotificationMobile = *req.NotificationMobile
	}
	if req.EmailDigestFrequency != nil {
		preferences.EmailDigestFrequency = *req.EmailDigestFrequency
	}
	if req.Theme != nil {
		preferences.Theme = *req.Theme
	}
	if req.Language != nil {
		preferences.Language = *req.Language
	}

	if err := s.userRepository.SavePreferences(ctx, preferences); err != nil {
		return domain.UserPreferences{}, err
	}
	return preferencesToDomain(preferences), nil
}

func (s *userService) GetStats(ctx context.Context, userID string) (domain.UserStats, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing written yet, everything is zero.
			return domain.UserStats{RecipesPerMonth: monthlyHistogram(nil, time.Now())}, nil
		}
		return domain.UserStats{}, err
	}

	recipeCount, err := s.userRepository.CountRecipesByUser(ctx, profile.ID)
	if err != nil {
		return domain.UserStats{}, err
	}
	favoritesCount, err := s.userRepository.CountFavoritesReceived(ctx, profile.ID)
	if err != nil {
		return domain.UserStats{}, err
	}
	commentsReceived, err := s.userRepository.CountCommentsReceived(ctx, profile.ID)
	if err != nil {
		return domain.UserStats{}, err
	}
	createdAt, err := s.userRepository.GetRecipeCreationTimes(ctx, profile.ID)
	if err != nil {
		return domain.UserStats{}, err
	}

	return domain.UserStats{
		RecipeCount:      int(recipeCount),
		FavoritesCount:   int(favoritesCount),
		CommentsReceived: int(commentsReceived),
		RecipesPerMonth:  monthlyHistogram(createdAt, time.Now()),
	}, nil
}

// monthlyHistogram buckets creation times into the trailing 12 calendar
// months, oldest first. Months with no activity stay at zero.
func monthlyHistogram(times []time.Time, now time.Time) []domain.MonthlyCount {
	counts := make([]domain.MonthlyCount, 0, 12)
	index := make(map[string]int, 12)
	for i := 11; i >= 0; i-- {
		month := now.AddDate(0, -i, 0).Format("2006-01")
		index[month] = len(counts)
		counts = append(counts, domain.MonthlyCount{Month: month})
	}
	for _, t := range times {
		if pos, ok := index[t.Format("2006-01")]; ok {
			counts[pos].Count++
		}
	}
	return counts
}

func profileToDomain(profile *entities.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		Bio:                profile.Bio,
		WebsiteURL:         profile.WebsiteURL,
		TwitterURL:         profile.TwitterURL,
		InstagramURL:       profile.InstagramURL,
		FacebookURL:        profile.FacebookURL,
		ExpertiseLevel:     profile.ExpertiseLevel,
		DietaryPreferences: entities.DecodeStringList(profile.DietaryPreferences),
		FavoriteCuisines:   entities.DecodeStringList(profile.FavoriteCuisines),
	}
}

func preferencesToDomain(preferences *entities.UserPreferences) domain.UserPreferences {
	return domain.UserPreferences{
		NotificationEmail:    preferences.NotificationEmail,
		NotificationWeb:      preferences.NotificationWeb,
		NotificationMobile:   preferences.NotificationMobile,
		EmailDigestFrequency: preferences.EmailDigestFrequency,
		Theme:                preferences.Theme,
		Language:             preferences.Language,
	}
}

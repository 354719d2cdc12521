package user

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	profiles    map[string]*entities.UserProfile
	preferences map[string]*entities.UserPreferences

	recipeTimes   []time.Time
	recipeCount   int64
	favorites     int64
	comments      int64
	savedProfile  *entities.UserProfile
	savedPrefs    *entities.UserPreferences
	ensuredCalled int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		profiles:    map[string]*entities.UserProfile{},
		preferences: map[string]*entities.UserPreferences{},
	}
}

func (f *fakeUserRepository) EnsureProfile(_ context.Context, userID, fullName, email string) (*entities.UserProfile, error) {
	f.ensuredCalled++
	if profile, ok := f.profiles[userID]; ok {
		return profile, nil
	}
	profile := &entities.UserProfile{ID: uuid.New(), UserID: userID, FullName: fullName, Email: email}
	f.profiles[userID] = profile
	return profile, nil
}

func (f *fakeUserRepository) GetProfileByUserID(_ context.Context, userID string) (*entities.UserProfile, error) {
	if profile, ok := f.profiles[userID]; ok {
		return profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetProfileByID(_ context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	for _, profile := range f.profiles {
		if profile.ID == id {
			return profile, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) SaveProfile(_ context.Context, profile *entities.UserProfile) error {
	f.savedProfile = profile
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeUserRepository) GetPreferencesByUserID(_ context.Context, userID string) (*entities.UserPreferences, error) {
	if preferences, ok := f.preferences[userID]; ok {
		return preferences, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) SavePreferences(_ context.Context, preferences *entities.UserPreferences) error {
	f.savedPrefs = preferences
	f.preferences[preferences.UserID] = preferences
	return nil
}

func (f *fakeUserRepository) GetRecipeCreationTimes(_ context.Context, _ uuid.UUID) ([]time.Time, error) {
	return f.recipeTimes, nil
}

func (f *fakeUserRepository) CountRecipesByUser(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.recipeCount, nil
}

func (f *fakeUserRepository) CountFavoritesReceived(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.favorites, nil
}

func (f *fakeUserRepository) CountCommentsReceived(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.comments, nil
}

func TestGetProfileReturnsDefaultsWhenMissing(t *testing.T) {
	service := NewUserService(newFakeUserRepository())

	profile, err := service.GetProfile(context.Background(), "auth0|missing")
	require.NoError(t, err)

	assert.Nil(t, profile.Bio)
	assert.Nil(t, profile.ExpertiseLevel)
	assert.NotNil(t, profile.DietaryPreferences)
	assert.Empty(t, profile.DietaryPreferences)
	assert.NotNil(t, profile.FavoriteCuisines)
	assert.Empty(t, profile.FavoriteCuisines)
}

func TestGetPreferencesReturnsDefaultsWhenMissing(t *testing.T) {
	service := NewUserService(newFakeUserRepository())

	preferences, err := service.GetPreferences(context.Background(), "auth0|missing")
	require.NoError(t, err)

	assert.True(t, preferences.NotificationEmail)
	assert.True(t, preferences.NotificationWeb)
	assert.True(t, preferences.NotificationMobile)
	assert.Equal(t, "daily", preferences.EmailDigestFrequency)
	assert.Equal(t, "light", preferences.Theme)
	assert.Equal(t, "en", preferences.Language)
}

func TestUpdatePreferencesCreatesRowFromDefaults(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo)

	theme := "dark"
	updated, err := service.UpdatePreferences(context.Background(), domain.UpdateUserPreferencesRequest{Theme: &theme}, "auth0|alice")
	require.NoError(t, err)

	// Only the supplied field changes, everything else keeps the defaults.
	assert.Equal(t, "dark", updated.Theme)
	assert.True(t, updated.NotificationEmail)
	assert.Equal(t, "daily", updated.EmailDigestFrequency)
	require.NotNil(t, repo.savedPrefs)
	assert.Equal(t, "auth0|alice", repo.savedPrefs.UserID)
}

func TestUpdatePreferencesMergesExistingRow(t *testing.T) {
	repo := newFakeUserRepository()
	repo.preferences["auth0|alice"] = &entities.UserPreferences{
		UserID:               "auth0|alice",
		NotificationEmail:    false,
		NotificationWeb:      true,
		NotificationMobile:   true,
		EmailDigestFrequency: "weekly",
		Theme:                "dark",
		Language:             "fr",
	}
	service := NewUserService(repo)

	email := true
	updated, err := service.UpdatePreferences(context.Background(), domain.UpdateUserPreferencesRequest{NotificationEmail: &email}, "auth0|alice")
	require.NoError(t, err)

	assert.True(t, updated.NotificationEmail)
	assert.Equal(t, "weekly", updated.EmailDigestFrequency)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "fr", updated.Language)
}

func TestUpdateProfileMergesOnlySuppliedFields(t *testing.T) {
	repo := newFakeUserRepository()
	bio := "home cook"
	existing := &entities.UserProfile{
		ID:               uuid.New(),
		UserID:           "auth0|alice",
		FullName:         "Alice",
		Bio:              &bio,
		FavoriteCuisines: `["thai"]`,
	}
	repo.profiles["auth0|alice"] = existing
	service := NewUserService(repo)

	level := "advanced"
	updated, err := service.UpdateProfile(context.Background(), domain.UpdateUserProfileRequest{
		ExpertiseLevel:   &level,
		FavoriteCuisines: []string{"thai", "italian"},
	}, "auth0|alice")
	require.NoError(t, err)

	require.NotNil(t, updated.ExpertiseLevel)
	assert.Equal(t, "advanced", *updated.ExpertiseLevel)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "home cook", *updated.Bio)
	assert.Equal(t, []string{"thai", "italian"}, updated.FavoriteCuisines)
	assert.Equal(t, "Alice", repo.savedProfile.FullName)
}

func TestGetStatsEmptyUser(t *testing.T) {
	service := NewUserService(newFakeUserRepository())

	stats, err := service.GetStats(context.Background(), "auth0|missing")
	require.NoError(t, err)

	assert.Zero(t, stats.RecipeCount)
	assert.Zero(t, stats.FavoritesCount)
	assert.Zero(t, stats.CommentsReceived)
	require.Len(t, stats.RecipesPerMonth, 12)
	for _, bucket := range stats.RecipesPerMonth {
		assert.Zero(t, bucket.Count)
	}
}

func TestMonthlyHistogramBucketsTrailingYear(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	times := []time.Time{
		now,                    // current month
		now.AddDate(0, -1, 0),  // last month
		now.AddDate(0, -1, -2), // also last month
		now.AddDate(0, -11, 0), // oldest bucket
		now.AddDate(0, -12, 0), // outside the window
		now.AddDate(-2, 0, 0),  // far outside
	}

	buckets := monthlyHistogram(times, now)
	require.Len(t, buckets, 12)

	assert.Equal(t, "2025-09", buckets[0].Month)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, "2026-08", buckets[11].Month)
	assert.Equal(t, 1, buckets[11].Count)
	assert.Equal(t, "2026-07", buckets[10].Month)
	assert.Equal(t, 2, buckets[10].Count)

	total := 0
	for _, bucket := range buckets {
		total += bucket.Count
	}
	assert.Equal(t, 4, total)
}

func TestMonthlyHistogramEmpty(t *testing.T) {
	buckets := monthlyHistogram(nil, time.Now())
	require.Len(t, buckets, 12)
	for _, bucket := range buckets {
		assert.Zero(t, bucket.Count)
	}
}

package notification

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

type fakeNotificationRepository struct {
	created []*entities.Notification

	updateAffected int64
	updateCalls    int
	deleteAffected int64
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, notification *entities.Notification) error {
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepository) GetNotificationsByRecipient(_ context.Context, _ uuid.UUID) ([]*entities.Notification, error) {
	return f.created, nil
}

func (f *fakeNotificationRepository) UpdateNotification(_ context.Context, _ string, _ uuid.UUID, _ map[string]interface{}) (int64, error) {
	f.updateCalls++
	return f.updateAffected, nil
}

func (f *fakeNotificationRepository) DeleteNotification(_ context.Context, _ string, _ uuid.UUID) (int64, error) {
	return f.deleteAffected, nil
}

type fakeProfileStore struct {
	profiles    map[uuid.UUID]*entities.UserProfile
	preferences map[string]*entities.UserPreferences
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles:    map[uuid.UUID]*entities.UserProfile{},
		preferences: map[string]*entities.UserPreferences{},
	}
}

func (f *fakeProfileStore) EnsureProfile(_ context.Context, userID, fullName, email string) (*entities.UserProfile, error) {
	profile := &entities.UserProfile{ID: uuid.New(), UserID: userID, FullName: fullName, Email: email}
	f.profiles[profile.ID] = profile
	return profile, nil
}

func (f *fakeProfileStore) GetProfileByUserID(_ context.Context, userID string) (*entities.UserProfile, error) {
	for _, profile := range f.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) GetProfileByID(_ context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	if profile, ok := f.profiles[id]; ok {
		return profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) SaveProfile(_ context.Context, profile *entities.UserProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileStore) GetPreferencesByUserID(_ context.Context, userID string) (*entities.UserPreferences, error) {
	if preferences, ok := f.preferences[userID]; ok {
		return preferences, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) SavePreferences(_ context.Context, preferences *entities.UserPreferences) error {
	f.preferences[preferences.UserID] = preferences
	return nil
}

func (f *fakeProfileStore) GetRecipeCreationTimes(_ context.Context, _ uuid.UUID) ([]time.Time, error) {
	return nil, nil
}

func (f *fakeProfileStore) CountRecipesByUser(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeProfileStore) CountFavoritesReceived(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeProfileStore) CountCommentsReceived(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeMailer struct {
	sent []struct {
		to, subject string
	}
}

func (f *fakeMailer) Send(toEmail, subject, _ string) error {
	f.sent = append(f.sent, struct{ to, subject string }{toEmail, subject})
	return nil
}

func addProfile(store *fakeProfileStore, email string) *entities.UserProfile {
	profile := &entities.UserProfile{
		ID:       uuid.New(),
		UserID:   "auth0|" + uuid.New().String(),
		FullName: "Tester",
		Email:    email,
	}
	store.profiles[profile.ID] = profile
	return profile
}

func TestNotifySkipsSelfActions(t *testing.T) {
	repo := &fakeNotificationRepository{}
	store := newFakeProfileStore()
	mailer := &fakeMailer{}
	service := NewNotificationService(repo, store, mailer)

	actor := addProfile(store, "actor@example.com")
	service.Notify(context.Background(), Event{
		Type:      entities.NotificationTypeComment,
		Recipient: actor.ID,
		Actor:     actor.ID,
	})

	assert.Empty(t, repo.created)
	assert.Empty(t, mailer.sent)
}

func TestNotifyCreatesRowAndSendsEmailByDefault(t *testing.T) {
	repo := &fakeNotificationRepository{}
	store := newFakeProfileStore()
	mailer := &fakeMailer{}
	service := NewNotificationService(repo, store, mailer)

	recipient := addProfile(store, "owner@example.com")
	actor := addProfile(store, "actor@example.com")
	recipeID := uuid.New()

	// No preferences row exists, so email defaults to on.
	service.Notify(context.Background(), Event{
		Type:      entities.NotificationTypeComment,
		Recipient: recipient.ID,
		Actor:     actor.ID,
		RecipeID:  &recipeID,
	})

	require.Len(t, repo.created, 1)
	assert.Equal(t, recipient.ID, repo.created[0].UserID)
	assert.Equal(t, actor.ID, repo.created[0].ActorID)
	assert.Equal(t, entities.NotificationTypeComment, repo.created[0].Type)
	require.NotNil(t, repo.created[0].RecipeID)
	assert.Equal(t, recipeID, *repo.created[0].RecipeID)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "owner@example.com", mailer.sent[0].to)
}

func TestNotifyHonorsEmailOptOut(t *testing.T) {
	repo := &fakeNotificationRepository{}
	store := newFakeProfileStore()
	mailer := &fakeMailer{}
	service := NewNotificationService(repo, store, mailer)

	recipient := addProfile(store, "owner@example.com")
	actor := addProfile(store, "actor@example.com")
	store.preferences[recipient.UserID] = &entities.UserPreferences{
		UserID:            recipient.UserID,
		NotificationEmail: false,
	}

	service.Notify(context.Background(), Event{
		Type:      entities.NotificationTypeReply,
		Recipient: recipient.ID,
		Actor:     actor.ID,
	})

	// The in-app row is still written, only the email is suppressed.
	require.Len(t, repo.created, 1)
	assert.Empty(t, mailer.sent)
}

func TestNotifySkipsEmailWithoutAddress(t *testing.T) {
	repo := &fakeNotificationRepository{}
	store := newFakeProfileStore()
	mailer := &fakeMailer{}
	service := NewNotificationService(repo, store, mailer)

	recipient := addProfile(store, "")
	actor := addProfile(store, "actor@example.com")

	service.Notify(context.Background(), Event{
		Type:      entities.NotificationTypePin,
		Recipient: recipient.ID,
		Actor:     actor.ID,
	})

	require.Len(t, repo.created, 1)
	assert.Empty(t, mailer.sent)
}

func TestUpdateNotificationNotOwned(t *testing.T) {
	service := NewNotificationService(&fakeNotificationRepository{}, newFakeProfileStore(), &fakeMailer{})

	read := true
	err := service.UpdateNotification(context.Background(), uuid.New().String(), domain.UpdateNotificationRequest{Read: &read}, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestUpdateNotificationEmptyBodyIsNoOp(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo, newFakeProfileStore(), &fakeMailer{})

	err := service.UpdateNotification(context.Background(), uuid.New().String(), domain.UpdateNotificationRequest{}, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, repo.updateCalls)
}

func TestDeleteNotificationNotOwned(t *testing.T) {
	service := NewNotificationService(&fakeNotificationRepository{}, newFakeProfileStore(), &fakeMailer{})

	err := service.DeleteNotification(context.Background(), uuid.New().String(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestEmailContentPerKind(t *testing.T) {
	actor := &entities.UserProfile{FullName: "Dana"}

	subject, body := emailContent(entities.NotificationTypeMention, actor)
	assert.Equal(t, "You were mentioned", subject)
	assert.Contains(t, body, "Dana")

	subject, _ = emailContent("unknown-kind", &entities.UserProfile{})
	assert.Equal(t, "New activity", subject)
}

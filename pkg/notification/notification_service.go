package notification

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"TasteBite-Backend/pkg/user"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// Mailer abstracts the SMTP client so the service can be tested without
	// a mail server.
	Mailer interface {
		Send(toEmail, subject, body string) error
	}

	// Event describes a notification-worthy action against a recipe or
	// comment. Recipient and Actor are profile ids.
	Event struct {
		Type      string
		Recipient uuid.UUID
		Actor     uuid.UUID
		RecipeID  *uuid.UUID
		CommentID *uuid.UUID
	}

	NotificationService interface {
		GetNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
		UpdateNotification(ctx context.Context, id string, req domain.UpdateNotificationRequest, userID uuid.UUID) error
		DeleteNotification(ctx context.Context, id string, userID uuid.UUID) error
		// Notify is fire-and-forget: failures are logged and swallowed so the
		// triggering action never fails because of a notification.
		Notify(ctx context.Context, event Event)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userRepository         user.UserRepository
		mailer                 Mailer
	}
)

func NewNotificationService(notificationRepository NotificationRepository, userRepository user.UserRepository, mailer Mailer) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		mailer:                 mailer,
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	notifications, err := s.notificationRepository.GetNotificationsByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Notification, 0, len(notifications))
	for _, notification := range notifications {
		entry := domain.Notification{
			ID:        notification.ID.String(),
			Type:      notification.Type,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		}
		if notification.RecipeID != nil {
			recipeID := notification.RecipeID.String()
			entry.RecipeID = &recipeID
		}
		if notification.CommentID != nil {
			commentID := notification.CommentID.String()
			entry.CommentID = &commentID
		}
		if notification.Actor != nil {
			entry.Actor = &domain.RecipeAuthor{
				ID:        notification.Actor.ID.String(),
				FullName:  notification.Actor.FullName,
				AvatarURL: notification.Actor.AvatarURL,
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *notificationService) UpdateNotification(ctx context.Context, id string, req domain.UpdateNotificationRequest, userID uuid.UUID) error {
	// An empty body is a no-op, not a not-found.
	if req.Read == nil {
		return nil
	}

	affected, err := s.notificationRepository.UpdateNotification(ctx, id, userID, map[string]interface{}{"read": *req.Read})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string, userID uuid.UUID) error {
	affected, err := s.notificationRepository.DeleteNotification(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) Notify(ctx context.Context, event Event) {
	// Self-actions never notify.
	if event.Recipient == event.Actor {
		return
	}

	notification := newNotification(event.Recipient, event.Actor, event.Type)
	notification.RecipeID = event.RecipeID
	notification.CommentID = event.CommentID
	if err := s.notificationRepository.CreateNotification(ctx, &notification); err != nil {
		log.Errorf("create %s notification: %v", event.Type, err)
		return
	}

	s.sendEmail(ctx, event)
}

func (s *notificationService) sendEmail(ctx context.Context, event Event) {
	recipient, err := s.userRepository.GetProfileByID(ctx, event.Recipient)
	if err != nil || recipient.Email == "" {
		return
	}

	preferences, err := s.userRepository.GetPreferencesByUserID(ctx, recipient.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return
		}
		// No row yet, the documented default is email on.
	} else if !preferences.NotificationEmail {
		return
	}

	actor, err := s.userRepository.GetProfileByID(ctx, event.Actor)
	if err != nil {
		return
	}

	subject, body := emailContent(event.Type, actor)
	if err := s.mailer.Send(recipient.Email, subject, body); err != nil {
		log.Errorf("send %s notification mail: %v", event.Type, err)
	}
}

func emailContent(kind string, actor *entities.UserProfile) (string, string) {
	name := actor.FullName
	if name == "" {
		name = "Someone"
	}
	switch kind {
	case entities.NotificationTypeComment:
		return "New comment on your recipe", fmt.Sprintf("<p>%s commented on your recipe.</p>", name)
	case entities.NotificationTypeReply:
		return "New reply to your comment", fmt.Sprintf("<p>%s replied to your comment.</p>", name)
	case entities.NotificationTypeMention:
		return "You were mentioned", fmt.Sprintf("<p>%s mentioned you in a comment.</p>", name)
	case entities.NotificationTypeReaction:
		return "New reaction to your comment", fmt.Sprintf("<p>%s reacted to your comment.</p>", name)
	case entities.NotificationTypePin:
		return "Your comment was pinned", fmt.Sprintf("<p>%s pinned your comment.</p>", name)
	}
	return "New activity", fmt.Sprintf("<p>%s interacted with your recipe.</p>", name)
}

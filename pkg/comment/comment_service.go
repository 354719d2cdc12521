package comment

import (
	"TasteBite-Backend/domain"
	"TasteBite-Backend/entities"
	"TasteBite-Backend/pkg/notification"
	"TasteBite-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		GetComments(ctx context.Context, recipeID string) ([]domain.Comment, error)
		AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, authorID uuid.UUID) (domain.Comment, error)
		DeleteComment(ctx context.Context, commentID string, authorID uuid.UUID) error
		ToggleReaction(ctx context.Context, commentID, emoji string, userID uuid.UUID) (bool, error)
		TogglePin(ctx context.Context, recipeID, commentID string, callerID uuid.UUID) (bool, error)
	}

	commentService struct {
		commentRepository   CommentRepository
		recipeRepository    recipe.RecipeRepository
		notificationService notification.NotificationService
	}
)

func NewCommentService(commentRepository CommentRepository, recipeRepository recipe.RecipeRepository, notificationService notification.NotificationService) CommentService {
	return &commentService{
		commentRepository:   commentRepository,
		recipeRepository:    recipeRepository,
		notificationService: notificationService,
	}
}

func (s *commentService) GetComments(ctx context.Context, recipeID string) ([]domain.Comment, error) {
	comments, err := s.commentRepository.GetCommentsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, commentToDomain(comment))
	}
	return result, nil
}

func (s *commentService) AddComment(ctx context.Context, recipeID string, req domain.AddCommentRequest, authorID uuid.UUID) (domain.Comment, error) {
	parent, target, err := s.resolveTarget(ctx, recipeID, req.ParentCommentID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := &entities.Comment{
		ID:       uuid.New(),
		RecipeID: target.ID,
		UserID:   authorID,
		Content:  req.Content,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	} else {
		// Ratings are meaningful on top-level comments only.
		comment.Rating = req.Rating
	}

	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}

	s.notifyCommentAdded(ctx, target, parent, comment, req.MentionedUsers)
	return commentToDomain(comment), nil
}

// resolveTarget loads the recipe and, for replies, the parent comment. A
// reply to a reply is rejected: threads are one level deep.
func (s *commentService) resolveTarget(ctx context.Context, recipeID string, parentCommentID *string) (*entities.Comment, *entities.Recipe, error) {
	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrRecipeNotFound
		}
		return nil, nil, err
	}

	if parentCommentID == nil {
		return nil, target, nil
	}

	parent, err := s.commentRepository.GetCommentByID(ctx, *parentCommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrCommentNotFound
		}
		return nil, nil, err
	}
	if parent.ParentID != nil {
		return nil, nil, domain.ErrReplyToReply
	}
	if parent.RecipeID != target.ID {
		return nil, nil, domain.ErrCommentNotFound
	}
	return parent, target, nil
}

func (s *commentService) notifyCommentAdded(ctx context.Context, target *entities.Recipe, parent *entities.Comment, comment *entities.Comment, mentions []string) {
	recipeID := target.ID
	if parent != nil {
		s.notificationService.Notify(ctx, notification.Event{
			Type:      entities.NotificationTypeReply,
			Recipient: parent.UserID,
			Actor:     comment.UserID,
			RecipeID:  &recipeID,
			CommentID: &comment.ID,
		})
	} else {
		s.notificationService.Notify(ctx, notification.Event{
			Type:      entities.NotificationTypeComment,
			Recipient: target.UserID,
			Actor:     comment.UserID,
			RecipeID:  &recipeID,
			CommentID: &comment.ID,
		})
	}

	for _, mention := range mentions {
		mentioned, err := uuid.Parse(mention)
		if err != nil {
			continue
		}
		s.notificationService.Notify(ctx, notification.Event{
			Type:      entities.NotificationTypeMention,
			Recipient: mentioned,
			Actor:     comment.UserID,
			RecipeID:  &recipeID,
			CommentID: &comment.ID,
		})
	}
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string, authorID uuid.UUID) error {
	affected, err := s.commentRepository.DeleteComment(ctx, commentID, authorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUnauthorizedCommentAccess
	}
	return nil
}

func (s *commentService) ToggleReaction(ctx context.Context, commentID, emoji string, userID uuid.UUID) (bool, error) {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrCommentNotFound
		}
		return false, err
	}

	existing, err := s.commentRepository.GetReaction(ctx, comment.ID, userID, emoji)
	if err == nil {
		if err := s.commentRepository.DeleteReaction(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	reaction := &entities.CommentReaction{
		ID:        uuid.New(),
		CommentID: comment.ID,
		UserID:    userID,
		Emoji:     emoji,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepository.CreateReaction(ctx, reaction); err != nil {
		return false, err
	}

	s.notificationService.Notify(ctx, notification.Event{
		Type:      entities.NotificationTypeReaction,
		Recipient: comment.UserID,
		Actor:     userID,
		RecipeID:  &comment.RecipeID,
		CommentID: &comment.ID,
	})
	return true, nil
}

func (s *commentService) TogglePin(ctx context.Context, recipeID, commentID string, callerID uuid.UUID) (bool, error) {
	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecipeNotFound
		}
		return false, err
	}
	if target.UserID != callerID {
		return false, domain.ErrPinNotRecipeOwner
	}

	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrCommentNotFound
		}
		return false, err
	}
	if comment.RecipeID != target.ID {
		return false, domain.ErrCommentNotFound
	}

	pinned := !comment.Pinned
	if err := s.commentRepository.SetPinned(ctx, comment.ID, pinned); err != nil {
		return false, err
	}

	if pinned {
		s.notificationService.Notify(ctx, notification.Event{
			Type:      entities.NotificationTypePin,
			Recipient: comment.UserID,
			Actor:     callerID,
			RecipeID:  &target.ID,
			CommentID: &comment.ID,
		})
	}
	return pinned, nil
}

func commentToDomain(comment *entities.Comment) domain.Comment {
	result := domain.Comment{
		ID:        comment.ID.String(),
		Content:   comment.Content,
		Rating:    comment.Rating,
		Pinned:    comment.Pinned,
		Reactions: reactionSummaries(comment.Reactions),
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		result.User = &domain.RecipeAuthor{
			ID:        comment.User.ID.String(),
			FullName:  comment.User.FullName,
			AvatarURL: comment.User.AvatarURL,
		}
	}
	for _, reply := range comment.Replies {
		reply := reply
		result.Replies = append(result.Replies, commentToDomain(&reply))
	}
	return result
}

// reactionSummaries groups raw reaction rows by emoji, preserving first-seen
// order.
func reactionSummaries(reactions []entities.CommentReaction) []domain.ReactionSummary {
	summaries := make([]domain.ReactionSummary, 0)
	index := map[string]int{}
	for _, reaction := range reactions {
		pos, ok := index[reaction.Emoji]
		if !ok {
			pos = len(summaries)
			index[reaction.Emoji] = pos
			summaries = append(summaries, domain.ReactionSummary{
				Emoji: reaction.Emoji,
				Users: []domain.RecipeAuthor{},
			})
		}
		summaries[pos].Count++
		if reaction.User != nil {
			summaries[pos].Users = append(summaries[pos].Users, domain.RecipeAuthor{
				ID:        reaction.User.ID.String(),
				FullName:  reaction.User.FullName,
				AvatarURL: reaction.User.AvatarURL,
			})
		}
	}
	return summaries
}

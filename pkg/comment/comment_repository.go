package comment

import (
	"TasteBite-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		// GetCommentsByRecipe returns top-level comments with replies and
		// reactions preloaded, pinned ones first, then newest first.
		GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error)
		DeleteComment(ctx context.Context, id string, authorID uuid.UUID) (int64, error)
		SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error

		GetReaction(ctx context.Context, commentID, userID uuid.UUID, emoji string) (*entities.CommentReaction, error)
		CreateReaction(ctx context.Context, reaction *entities.CommentReaction) error
		DeleteReaction(ctx context.Context, id uuid.UUID) error
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reactions.User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at asc")
		}).
		Preload("Replies.User").
		Preload("Replies.Reactions.User").
		Where("recipe_id = ? AND parent_id IS NULL", recipeID).
		Order("pinned desc, created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id string, authorID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, authorID).
		Delete(&entities.Comment{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, nil
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("comment_id = ?", id).Delete(&entities.CommentReaction{}).Error; err != nil {
		return res.RowsAffected, err
	}
	// Replies go with their parent, reactions first.
	if err := db.Exec("DELETE FROM comment_reactions WHERE comment_id IN (SELECT id FROM comments WHERE parent_id = ?)", id).Error; err != nil {
		return res.RowsAffected, err
	}
	if err := db.Where("parent_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
		return res.RowsAffected, err
	}
	return res.RowsAffected, nil
}

func (r *commentRepository) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", id).
		Update("pinned", pinned).Error
}

func (r *commentRepository) GetReaction(ctx context.Context, commentID, userID uuid.UUID, emoji string) (*entities.CommentReaction, error) {
	var reaction entities.CommentReaction
	if err := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ? AND emoji = ?", commentID, userID, emoji).
		First(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *commentRepository) CreateReaction(ctx context.Context, reaction *entities.CommentReaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

func (r *commentRepository) DeleteReaction(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CommentReaction{}).Error
}

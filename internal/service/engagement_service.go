package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gaurav-Shaw09/PenFolio/internal/model"
	"github.com/Gaurav-Shaw09/PenFolio/internal/repository"
)

// EngagementService owns posts, comments and their like sets. Every
// state-changing call that affects another user enqueues a fan-out event in
// the same transaction as the change itself.
type EngagementService interface {
	CreatePost(ctx context.Context, authorID, title, content, imagePath string) (*model.PostView, error)
	GetPost(ctx context.Context, postID string) (*model.PostView, error)
	ListPosts(ctx context.Context) ([]*model.PostView, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]*model.PostView, error)
	FollowingFeed(ctx context.Context, userID string) ([]*model.PostView, error)
	UpdatePost(ctx context.Context, postID, requesterID, title, content string) (*model.PostView, error)
	DeletePost(ctx context.Context, postID, requesterID string) error

	ToggleLike(ctx context.Context, postID, userID string) (int64, error)
	AddComment(ctx context.Context, postID, authorID, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID, requesterID string) error
	ToggleCommentLike(ctx context.Context, commentID, userID string) (int64, error)
}

type engagementService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	followRepo  repository.FollowRepository
}

func NewEngagementService(db *gorm.DB, userRepo repository.UserRepository, postRepo repository.PostRepository, commentRepo repository.CommentRepository, likeRepo repository.LikeRepository, followRepo repository.FollowRepository) EngagementService {
	return &engagementService{
		db:          db,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
	}
}

func (s *engagementService) CreatePost(ctx context.Context, authorID, title, content, imagePath string) (*model.PostView, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}
	post := &model.Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		// display-name snapshot, not re-read on later profile edits
		Author:    author.Username,
		Title:     title,
		Content:   content,
		ImagePath: imagePath,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return &model.PostView{Post: *post, LikedBy: []string{}, Comments: []model.CommentView{}}, nil
}

func (s *engagementService) GetPost(ctx context.Context, postID string) (*model.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return s.view(ctx, post)
}

func (s *engagementService) ListPosts(ctx context.Context) ([]*model.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, posts)
}

func (s *engagementService) ListPostsByAuthor(ctx context.Context, authorID string) ([]*model.PostView, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, posts)
}

// FollowingFeed returns the posts of everyone userID follows, newest first.
func (s *engagementService) FollowingFeed(ctx context.Context, userID string) ([]*model.PostView, error) {
	ids, err := s.followRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.PostView{}, nil
	}
	posts, err := s.postRepo.ListByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, posts)
}

func (s *engagementService) UpdatePost(ctx context.Context, postID, requesterID, title, content string) (*model.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.AuthorID != requesterID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(title) != "" {
		post.Title = title
	}
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.view(ctx, post)
}

// DeletePost removes the post and cascades to its comments and all like sets.
func (s *engagementService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if post.AuthorID != requesterID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []string
		if err := tx.Model(&model.Comment{}).
			Where("post_id = ?", postID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&model.Post{}).Error
	})
}

// ToggleLike adds userID to the post's like set, or removes it if already
// present, and returns the resulting like count. A LIKE event is enqueued
// only on the like transition and never for the post's own author.
func (s *engagementService) ToggleLike(ctx context.Context, postID, userID string) (int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrNotFound
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)
		removed, err := likes.RemovePostLike(ctx, postID, userID)
		if err != nil {
			return err
		}
		if removed {
			// unlike: no event
			return nil
		}
		added, err := likes.AddPostLike(ctx, postID, userID)
		if err != nil {
			return err
		}
		if added && userID != post.AuthorID {
			return repository.NewEventRepository(tx).Enqueue(ctx, &model.EngagementEvent{
				Kind:        model.NotificationLike,
				RecipientID: post.AuthorID,
				ActorID:     userID,
				PostID:      postID,
				Message:     fmt.Sprintf("%s liked %s", user.Username, post.Title),
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return s.likeRepo.CountPostLikes(ctx, postID)
}

func (s *engagementService) AddComment(ctx context.Context, postID, authorID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content is required", ErrValidation)
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}

	comment := &model.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  authorID,
		Author:    author.Username,
		Content:   content,
		CreatedAt: time.Now(),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if authorID != post.AuthorID {
			return repository.NewEventRepository(tx).Enqueue(ctx, &model.EngagementEvent{
				Kind:        model.NotificationComment,
				RecipientID: post.AuthorID,
				ActorID:     authorID,
				PostID:      postID,
				Message:     fmt.Sprintf("%s commented on %s", author.Username, post.Title),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment is allowed for the comment's author and for the post's owner.
func (s *engagementService) DeleteComment(ctx context.Context, postID, commentID, requesterID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.PostID != postID {
		return ErrNotFound
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if requesterID != comment.AuthorID && requesterID != post.AuthorID {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", commentID).Delete(&model.Comment{}).Error
	})
}

// ToggleCommentLike mirrors ToggleLike for comments.
func (s *engagementService) ToggleCommentLike(ctx context.Context, commentID, userID string) (int64, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrNotFound
	}
	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrNotFound
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)
		removed, err := likes.RemoveCommentLike(ctx, commentID, userID)
		if err != nil {
			return err
		}
		if removed {
			return nil
		}
		added, err := likes.AddCommentLike(ctx, commentID, userID)
		if err != nil {
			return err
		}
		if added && userID != comment.AuthorID {
			return repository.NewEventRepository(tx).Enqueue(ctx, &model.EngagementEvent{
				Kind:        model.NotificationCommentLike,
				RecipientID: comment.AuthorID,
				ActorID:     userID,
				PostID:      comment.PostID,
				Message:     fmt.Sprintf("%s liked your comment on %s", user.Username, post.Title),
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return s.likeRepo.CountCommentLikes(ctx, commentID)
}

// view assembles a post with its derived engagement state.
func (s *engagementService) view(ctx context.Context, post *model.Post) (*model.PostView, error) {
	likerIDs, err := s.likeRepo.PostLikerIDs(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	cs := make([]model.CommentView, len(comments))
	for i, c := range comments {
		likers, err := s.likeRepo.CommentLikerIDs(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		cs[i] = model.CommentView{
			Comment:   *c,
			LikeCount: int64(len(likers)),
			LikedBy:   likers,
		}
	}
	return &model.PostView{
		Post:      *post,
		LikeCount: int64(len(likerIDs)),
		LikedBy:   likerIDs,
		Comments:  cs,
	}, nil
}

func (s *engagementService) views(ctx context.Context, posts []*model.Post) ([]*model.PostView, error) {
	out := make([]*model.PostView, 0, len(posts))
	for _, p := range posts {
		v, err := s.view(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

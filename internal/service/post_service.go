package service

import (
	"errors"
	"fmt"

	"devconnector-be/internal/entities"
	"devconnector-be/internal/repository"
)

// PostService defines the interface for post business logic. Delete and
// comment-delete enforce the ownership guard: the authenticated identity
// must equal the resource's stored owner, otherwise nothing is mutated.
type PostService interface {
	Create(userID, text string) (*entities.Post, error)
	GetAll() ([]*entities.Post, error)
	GetByID(postID string) (*entities.Post, error)
	Delete(postID, userID string) error
	Like(postID, userID string) ([]entities.Like, error)
	Unlike(postID, userID string) ([]entities.Like, error)
	AddComment(postID, userID, text string) ([]entities.Comment, error)
	DeleteComment(postID, commentID, userID string) ([]entities.Comment, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create stores a post stamped with the author's current name and avatar.
func (s *postService) Create(userID, text string) (*entities.Post, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	post, err := s.postRepo.Create(userID, text, user.Name, user.Avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetAll returns all posts, newest first.
func (s *postService) GetAll() ([]*entities.Post, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetByID returns a single post.
func (s *postService) GetByID(postID string) (*entities.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// Delete removes a post, owner only.
func (s *postService) Delete(postID, userID string) error {
	post, err := s.GetByID(postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		return ErrNotAuthorized
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// Like records a like; a second like by the same user is rejected.
func (s *postService) Like(postID, userID string) ([]entities.Like, error) {
	post, err := s.GetByID(postID)
	if err != nil {
		return nil, err
	}

	for _, like := range post.Likes {
		if like.UserID == userID {
			return nil, ErrAlreadyLiked
		}
	}

	if err := s.postRepo.AddLike(postID, userID); err != nil {
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	return s.likes(postID)
}

// Unlike removes a like; unliking a post that was never liked is rejected.
func (s *postService) Unlike(postID, userID string) ([]entities.Like, error) {
	post, err := s.GetByID(postID)
	if err != nil {
		return nil, err
	}

	liked := false
	for _, like := range post.Likes {
		if like.UserID == userID {
			liked = true
			break
		}
	}
	if !liked {
		return nil, ErrNotYetLiked
	}

	if err := s.postRepo.RemoveLike(postID, userID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to unlike post: %w", err)
	}

	return s.likes(postID)
}

func (s *postService) likes(postID string) ([]entities.Like, error) {
	post, err := s.GetByID(postID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment appends a comment stamped with the author's name and avatar.
func (s *postService) AddComment(postID, userID, text string) ([]entities.Comment, error) {
	if _, err := s.GetByID(postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.postRepo.AddComment(postID, userID, text, user.Name, user.Avatar); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return s.comments(postID)
}

// DeleteComment removes a comment, comment owner only.
func (s *postService) DeleteComment(postID, commentID, userID string) ([]entities.Comment, error) {
	post, err := s.GetByID(postID)
	if err != nil {
		return nil, err
	}

	var target *entities.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			target = &post.Comments[i]
			break
		}
	}
	if target == nil {
		return nil, ErrCommentNotFound
	}

	if target.UserID != userID {
		return nil, ErrNotAuthorized
	}

	if err := s.postRepo.DeleteComment(commentID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	return s.comments(postID)
}

func (s *postService) comments(postID string) ([]entities.Comment, error) {
	post, err := s.GetByID(postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

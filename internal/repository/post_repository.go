package repository

import (
	"database/sql"
	"fmt"

	"devconnector-be/internal/entities"

	"github.com/google/uuid"
)

// PostRepository defines the interface for post database operations.
type PostRepository interface {
	Create(userID, text, name, avatar string) (*entities.Post, error)
	FindByID(id string) (*entities.Post, error)
	FindAll() ([]*entities.Post, error)
	Delete(id string) error
	AddLike(postID, userID string) error
	RemoveLike(postID, userID string) error
	AddComment(postID, userID, text, name, avatar string) error
	DeleteComment(commentID string) error
}

type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post with the author's name/avatar snapshot.
func (r *postRepository) Create(userID, text, name, avatar string) (*entities.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, text, name, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, text, name, avatar, created_at
	`

	var post entities.Post
	err := r.db.QueryRow(query, uuid.NewString(), userID, text, name, avatar).Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.Name,
		&post.Avatar,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	post.Likes = []entities.Like{}
	post.Comments = []entities.Comment{}
	return &post, nil
}

// FindByID returns a post with its likes and comments.
func (r *postRepository) FindByID(id string) (*entities.Post, error) {
	query := `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		WHERE id = $1
	`

	var post entities.Post
	err := r.db.QueryRow(query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.Name,
		&post.Avatar,
		&post.CreatedAt,
	)

	if isMissing(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	if err := r.loadChildren(&post); err != nil {
		return nil, err
	}

	return &post, nil
}

// FindAll returns all posts, newest first.
func (r *postRepository) FindAll() ([]*entities.Post, error) {
	query := `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*entities.Post
	for rows.Next() {
		var post entities.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Text,
			&post.Name, &post.Avatar, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	for _, post := range posts {
		if err := r.loadChildren(post); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *postRepository) loadChildren(post *entities.Post) error {
	post.Likes = []entities.Like{}
	post.Comments = []entities.Comment{}

	rows, err := r.db.Query(`SELECT user_id FROM post_likes WHERE post_id = $1`, post.ID)
	if err != nil {
		return fmt.Errorf("failed to load likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var like entities.Like
		if err := rows.Scan(&like.UserID); err != nil {
			return fmt.Errorf("failed to scan like: %w", err)
		}
		post.Likes = append(post.Likes, like)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating likes: %w", err)
	}

	commentRows, err := r.db.Query(`
		SELECT id, user_id, text, name, avatar, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created_at DESC
	`, post.ID)
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var comment entities.Comment
		if err := commentRows.Scan(&comment.ID, &comment.UserID, &comment.Text,
			&comment.Name, &comment.Avatar, &comment.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan comment: %w", err)
		}
		post.Comments = append(post.Comments, comment)
	}
	return commentRows.Err()
}

// Delete removes a post. Ownership is checked by the service before calling.
func (r *postRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if isMissing(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return requireRows(result)
}

// AddLike records a like. The (post_id, user_id) primary key rejects
// duplicates at the database level.
func (r *postRepository) AddLike(postID, userID string) error {
	_, err := r.db.Exec(`
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

// RemoveLike removes a user's like from a post.
func (r *postRepository) RemoveLike(postID, userID string) error {
	result, err := r.db.Exec(`
		DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
	`, postID, userID)
	if isMissing(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return requireRows(result)
}

// AddComment appends a comment with the author's name/avatar snapshot.
func (r *postRepository) AddComment(postID, userID, text, name, avatar string) error {
	_, err := r.db.Exec(`
		INSERT INTO post_comments (id, post_id, user_id, text, name, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), postID, userID, text, name, avatar)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// DeleteComment removes a comment. Ownership is checked by the service.
func (r *postRepository) DeleteComment(commentID string) error {
	result, err := r.db.Exec(`DELETE FROM post_comments WHERE id = $1`, commentID)
	if isMissing(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireRows(result)
}

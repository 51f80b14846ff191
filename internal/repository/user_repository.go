package repository

import (
	"database/sql"
	"fmt"

	"devconnector-be/internal/entities"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user database operations.
type UserRepository interface {
	Create(name, email, passwordHash, avatar string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	Delete(id string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The email column is unique; a concurrent
// registration that wins the insert surfaces here as ErrDuplicate.
func (r *userRepository) Create(name, email, passwordHash, avatar string) (*entities.User, error) {
	query := `
		INSERT INTO users (id, name, email, password_hash, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password_hash, avatar, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, uuid.NewString(), name, email, passwordHash, avatar).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&user.CreatedAt,
	)
	if isDuplicate(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	return r.findOne(`
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users
		WHERE email = $1
	`, email)
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	return r.findOne(`
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *userRepository) findOne(query string, arg interface{}) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&user.CreatedAt,
	)

	if isMissing(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// Delete removes a user. Profile, experiences, educations, posts, likes and
// comments go with it via ON DELETE CASCADE, in one atomic statement.
func (r *userRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if isMissing(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

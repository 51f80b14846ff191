package service

import "errors"

// Sentinel errors controllers translate into HTTP responses. Anything not in
// this list is an unexpected collaborator failure and becomes a 500.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment does not exist")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotYetLiked        = errors.New("post has not yet been liked")
	ErrNoGithubProfile    = errors.New("no github profile found")
)

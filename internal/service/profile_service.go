package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"devconnector-be/internal/cache"
	"devconnector-be/internal/entities"
	"devconnector-be/internal/models"
	"devconnector-be/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileService defines the interface for profile business logic. All
// mutations are scoped to the authenticated user's own profile; account
// deletion removes the user record and everything hanging off it.
type ProfileService interface {
	GetCurrent(userID string) (*entities.Profile, error)
	GetByUserID(userID string) (*entities.Profile, error)
	GetAll() ([]*entities.Profile, error)
	Upsert(userID string, req *models.ProfileRequest) (*entities.Profile, error)
	AddExperience(userID string, req *models.ExperienceRequest) (*entities.Profile, error)
	DeleteExperience(userID, experienceID string) (*entities.Profile, error)
	AddEducation(userID string, req *models.EducationRequest) (*entities.Profile, error)
	DeleteEducation(userID, educationID string) (*entities.Profile, error)
	DeleteAccount(userID string) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	cache       cache.Cache
	ctx         context.Context
}

// NewProfileService creates a new profile service. The cache is optional;
// passing nil disables caching.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, cacheClient cache.Cache) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		cache:       cacheClient,
		ctx:         context.Background(),
	}
}

func profileCacheKey(userID string) string {
	return fmt.Sprintf("profile:user:%s", userID)
}

func (s *profileService) invalidate(userID string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, profileCacheKey(userID))
	}
}

// GetCurrent returns the authenticated user's own profile.
func (s *profileService) GetCurrent(userID string) (*entities.Profile, error) {
	return s.GetByUserID(userID)
}

// GetByUserID returns a profile by owning user ID, cache-aside.
func (s *profileService) GetByUserID(userID string) (*entities.Profile, error) {
	if s.cache != nil {
		var cached entities.Profile
		err := s.cache.GetJSON(s.ctx, profileCacheKey(userID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			// A broken cache must not take profile reads down with it.
			log.Printf("profile cache read failed: %v", err)
		}
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, profileCacheKey(userID), profile, profileCacheTTL)
	}

	return profile, nil
}

// GetAll returns every profile.
func (s *profileService) GetAll() ([]*entities.Profile, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates or replaces the user's profile. Skills arrives as a
// comma-separated string and is split and trimmed here.
func (s *profileService) Upsert(userID string, req *models.ProfileRequest) (*entities.Profile, error) {
	fields := &entities.ProfileFields{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         splitSkills(req.Skills),
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Social: entities.Social{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	}

	profile, err := s.profileRepo.Upsert(userID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.invalidate(userID)
	return profile, nil
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// AddExperience appends a work history entry and returns the updated profile.
func (s *profileService) AddExperience(userID string, req *models.ExperienceRequest) (*entities.Profile, error) {
	exp := &entities.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        *req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	err := s.profileRepo.AddExperience(userID, exp)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add experience: %w", err)
	}

	s.invalidate(userID)
	return s.reload(userID)
}

// DeleteExperience removes one of the user's own experience entries.
func (s *profileService) DeleteExperience(userID, experienceID string) (*entities.Profile, error) {
	err := s.profileRepo.DeleteExperience(userID, experienceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete experience: %w", err)
	}

	s.invalidate(userID)
	return s.reload(userID)
}

// AddEducation appends a study history entry and returns the updated profile.
func (s *profileService) AddEducation(userID string, req *models.EducationRequest) (*entities.Profile, error) {
	edu := &entities.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         *req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	err := s.profileRepo.AddEducation(userID, edu)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add education: %w", err)
	}

	s.invalidate(userID)
	return s.reload(userID)
}

// DeleteEducation removes one of the user's own education entries.
func (s *profileService) DeleteEducation(userID, educationID string) (*entities.Profile, error) {
	err := s.profileRepo.DeleteEducation(userID, educationID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEducationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete education: %w", err)
	}

	s.invalidate(userID)
	return s.reload(userID)
}

func (s *profileService) reload(userID string) (*entities.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return profile, nil
}

// DeleteAccount removes the user record. The profile, its sub-entries and
// the user's posts go with it in the same statement (ON DELETE CASCADE).
func (s *profileService) DeleteAccount(userID string) error {
	err := s.userRepo.Delete(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.invalidate(userID)
	return nil
}

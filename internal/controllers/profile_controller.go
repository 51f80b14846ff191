package controllers

import (
	"errors"
	"net/http"

	"devconnector-be/internal/models"
	"devconnector-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profileService service.ProfileService
	githubService  service.GithubService
}

func NewProfileController(profileService service.ProfileService, githubService service.GithubService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		githubService:  githubService,
	}
}

// Me handles GET /api/profile/me.
func (pc *ProfileController) Me(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	profile, err := pc.profileService.GetCurrent(userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "There is no profile for this user"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert handles POST /api/profile - create or update the caller's profile.
func (pc *ProfileController) Upsert(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.ProfileMessages))
		return
	}

	profile, err := pc.profileService.Upsert(userID, &req)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetAll handles GET /api/profile.
func (pc *ProfileController) GetAll(c *gin.Context) {
	profiles, err := pc.profileService.GetAll()
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetByUserID handles GET /api/profile/user/:user_id.
func (pc *ProfileController) GetByUserID(c *gin.Context) {
	profile, err := pc.profileService.GetByUserID(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Profile not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddExperience handles PUT /api/profile/experience.
func (pc *ProfileController) AddExperience(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req models.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.ExperienceMessages))
		return
	}

	profile, err := pc.profileService.AddExperience(userID, &req)
	if err != nil {
		pc.respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id.
func (pc *ProfileController) DeleteExperience(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	profile, err := pc.profileService.DeleteExperience(userID, c.Param("exp_id"))
	if err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Experience not found"})
			return
		}
		pc.respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
func (pc *ProfileController) AddEducation(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req models.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.EducationMessages))
		return
	}

	profile, err := pc.profileService.AddEducation(userID, &req)
	if err != nil {
		pc.respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id.
func (pc *ProfileController) DeleteEducation(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	profile, err := pc.profileService.DeleteEducation(userID, c.Param("edu_id"))
	if err != nil {
		if errors.Is(err, service.ErrEducationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Education not found"})
			return
		}
		pc.respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteAccount handles DELETE /api/profile - removes the user, their
// profile and their posts.
func (pc *ProfileController) DeleteAccount(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	if err := pc.profileService.DeleteAccount(userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

// GithubRepos handles GET /api/profile/github/:username.
func (pc *ProfileController) GithubRepos(c *gin.Context) {
	repos, err := pc.githubService.Repos(c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrNoGithubProfile) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No Github profile found"})
			return
		}
		serverError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", repos)
}

func (pc *ProfileController) respondProfileError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Profile not found"})
		return
	}
	serverError(c, err)
}

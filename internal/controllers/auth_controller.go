package controllers

import (
	"errors"
	"net/http"

	"devconnector-be/internal/models"
	"devconnector-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /api/users.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.RegisterMessages))
		return
	}

	token, err := ac.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, models.NewErrorsResponse("Email already exists!"))
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Login handles POST /api/auth. Unknown email and wrong password share one
// response body on purpose.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err, models.LoginMessages))
		return
	}

	token, err := ac.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, models.NewErrorsResponse("Invalid credentials"))
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Me handles GET /api/auth - the authenticated user, hash omitted.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	user, err := ac.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

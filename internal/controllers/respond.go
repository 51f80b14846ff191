package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"devconnector-be/internal/middleware"
	"devconnector-be/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// serverError logs the underlying failure and returns the generic plain-text
// body. Internals never reach the client.
func serverError(c *gin.Context, err error) {
	log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.String(http.StatusInternalServerError, "Server Error")
}

// authedUser returns the user ID injected by the auth middleware.
func authedUser(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"msg": "No token, authorisation denied",
		})
		return "", false
	}
	return value.(string), true
}

// bindingErrors translates a ShouldBindJSON failure into the field-error
// list the frontend expects, using the per-request message map.
func bindingErrors(err error, messages map[string]string) models.ErrorsResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		items := make([]models.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			msg, ok := messages[fe.Field()]
			if !ok {
				msg = "Invalid value for " + strings.ToLower(fe.Field())
			}
			items = append(items, models.ErrorItem{Msg: msg})
		}
		return models.ErrorsResponse{Errors: items}
	}
	return models.NewErrorsResponse("Invalid request body")
}

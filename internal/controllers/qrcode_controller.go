package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type QRCodeController struct {
	frontendURL string
}

func NewQRCodeController(frontendURL string) *QRCodeController {
	return &QRCodeController{
		frontendURL: frontendURL,
	}
}

// ProfileQRCode handles GET /api/profile/user/:user_id/qrcode - a scannable
// link to the user's profile page on the frontend.
func (qc *QRCodeController) ProfileQRCode(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User id is required"})
		return
	}

	profileURL := qc.frontendURL + "/profile/" + userID

	code, err := qrcode.New(profileURL, qrcode.Medium)
	if err != nil {
		serverError(c, err)
		return
	}

	pngData, err := code.PNG(256)
	if err != nil {
		serverError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=profile-qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}

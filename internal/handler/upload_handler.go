package handler

import (
	"net/http"

	"nimbus-chat/internal/services"
	"nimbus-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Credentials issues the signed parameters for the client-side CDN
// upload widget. Nothing is persisted.
func (h *UploadHandler) Credentials(c *gin.Context) {
	creds, err := h.service.Credentials()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.FromCredentials(creds))
}

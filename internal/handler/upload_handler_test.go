package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"nimbus-chat/internal/middleware"
	"nimbus-chat/internal/services"
	"nimbus-chat/internal/transport/httpdto"
)

func newUploadRouter(privateKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUploadHandler(services.NewUploadService(privateKey, 30*time.Minute))
	r := gin.New()
	r.Use(middleware.ErrorHandler(nil))
	r.GET("/api/upload", asUser("user-1"), h.Credentials)
	return r
}

func TestUploadCredentialsReturnsSignedParams(t *testing.T) {
	r := newUploadRouter("private-key")

	req := httptest.NewRequest(http.MethodGet, "/api/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res httpdto.UploadCredentialsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	require.NotEmpty(t, res.Signature)
	require.Greater(t, res.Expire, time.Now().Unix())
}

func TestUploadCredentialsUnconfiguredKeyReturns500(t *testing.T) {
	r := newUploadRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var res httpdto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "INTERNAL_ERROR", res.Code)
	require.NotEmpty(t, res.Error)
}

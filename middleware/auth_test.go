package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
	"github.com/ehc32/Hostal-Acuario-sub000/utils"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		if id, ok := CurrentUserID(c); ok {
			c.JSON(http.StatusOK, gin.H{"id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"guest": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := testRouter()

	token, err := utils.GenerateToken(7, "cliente@example.com", models.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/private", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/private", "garbage").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "/private", token).Code)
}

func TestRequireAdmin(t *testing.T) {
	r := testRouter()

	clientToken, err := utils.GenerateToken(7, "cliente@example.com", models.RoleClient)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(1, "admin@hostalacuario.com", models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/admin", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/admin", clientToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "/admin", adminToken).Code)
}

func TestOptionalAuth(t *testing.T) {
	r := testRouter()

	token, err := utils.GenerateToken(7, "cliente@example.com", models.RoleClient)
	require.NoError(t, err)

	guest := doRequest(r, "/open", "")
	assert.Equal(t, http.StatusOK, guest.Code)
	assert.Contains(t, guest.Body.String(), "guest")

	// An invalid token is treated as absent, not rejected
	invalid := doRequest(r, "/open", "garbage")
	assert.Equal(t, http.StatusOK, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "guest")

	authed := doRequest(r, "/open", token)
	assert.Equal(t, http.StatusOK, authed.Code)
	assert.Contains(t, authed.Body.String(), `"id":7`)
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated", RequireSecret(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireSecretOpenWhenUnconfigured(t *testing.T) {
	router := setupTestRouter("")

	req, _ := http.NewRequest("GET", "/gated", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}

func TestRequireSecretMissing(t *testing.T) {
	router := setupTestRouter("hunter2")

	req, _ := http.NewRequest("GET", "/gated", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
}

func TestRequireSecretWrong(t *testing.T) {
	router := setupTestRouter("hunter2")

	req, _ := http.NewRequest("GET", "/gated", nil)
	req.Header.Set(SecretHeader, "password1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
}

func TestRequireSecretCorrect(t *testing.T) {
	router := setupTestRouter("hunter2")

	req, _ := http.NewRequest("GET", "/gated", nil)
	req.Header.Set(SecretHeader, "hunter2")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.Code)
	}
}

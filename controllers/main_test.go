package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/routes"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/utils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "testsecret")
	if _, err := config.InitTestDB(); err != nil {
		t.Fatalf("InitTestDB failed: %v", err)
	}
	return routes.SetupRouter()
}

func createUser(t *testing.T, username string, admin bool) (*models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{Username: username, Password: hash, IsAdmin: admin}
	if err := config.DB.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

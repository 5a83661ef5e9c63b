package posts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classhub/app/config"
	"classhub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenExpiry: time.Hour},
	}
	app := fiber.New()
	SetupPostsRoutes(app)
	return app
}

func authedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	token, err := auth.GenerateJWT(1, "test@example.com", "Test User")
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestPostsRequireToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1/posts", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"content": "hi", "classRoomId": 1, "authorId": 1, "postType": "MESSAGE"}},
		{"missing content", map[string]interface{}{"title": "hi", "classRoomId": 1, "authorId": 1, "postType": "MESSAGE"}},
		{"unknown post type", map[string]interface{}{"title": "hi", "content": "hi", "classRoomId": 1, "authorId": 1, "postType": "POLL"}},
		{"non-positive author", map[string]interface{}{"title": "hi", "content": "hi", "classRoomId": 1, "authorId": 0, "postType": "MESSAGE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/posts/", tt.body))
			if err != nil {
				t.Fatalf("app.Test() failed: %v", err)
			}
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestGetPostsInvalidParam(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/posts/abc/posts", nil))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

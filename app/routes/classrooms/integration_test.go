package classrooms

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"classhub/app/config"
	"classhub/app/database"
	"classhub/app/models"
	"classhub/app/storage"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
)

// setupDB connects to the database named by TEST_DATABASE_URL and resets the
// schema. Tests that need it are skipped when the variable is unset.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("opening test database failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	_, err = db.Exec(`TRUNCATE submissions, assignment_assigned_to, assignments,
		comments, file_uploads, posts, class_members, class_rooms, users
		RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncating tables failed: %v", err)
	}
	return db
}

func newIntegrationApp(t *testing.T, db *sql.DB) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenExpiry: time.Hour},
		DB:   db,
	}

	store, err := storage.NewDiskStorage(t.TempDir(), "uploads")
	if err != nil {
		t.Fatalf("NewDiskStorage() failed: %v", err)
	}

	app := fiber.New()
	SetupClassroomsRoutes(app, store)
	return app
}

func createTestUser(t *testing.T, db *sql.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "x"}
	if err := database.CreateUser(db, user); err != nil {
		t.Fatalf("creating user %s failed: %v", email, err)
	}
	return user
}

func TestCreateClassroomCreatesAdminMembership(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/classrooms/", map[string]interface{}{
		"name":        "Math101",
		"description": "intro",
		"creatorId":   creator.ID,
	}))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var room models.ClassRoom
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		t.Fatalf("decoding classroom failed: %v", err)
	}
	if room.CreatedBy != creator.ID {
		t.Errorf("createdBy = %d, want %d", room.CreatedBy, creator.ID)
	}

	var count int
	var role string
	err = db.QueryRow(`SELECT COUNT(*), MIN(role) FROM class_members WHERE class_id = $1 AND user_id = $2`,
		room.ID, creator.ID).Scan(&count, &role)
	if err != nil {
		t.Fatalf("querying memberships failed: %v", err)
	}
	if count != 1 {
		t.Errorf("membership rows = %d, want exactly 1", count)
	}
	if role != string(models.RoleAdmin) {
		t.Errorf("role = %q, want ADMIN", role)
	}
}

func TestUserClassesRoundTrip(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")

	room := &models.ClassRoom{Name: "Physics", CreatedBy: creator.ID}
	if err := database.CreateClassRoom(db, room); err != nil {
		t.Fatalf("creating classroom failed: %v", err)
	}

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/classrooms/1/classes", nil))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	classes, _ := body["classes"].([]interface{})
	found := false
	for _, c := range classes {
		if m, ok := c.(map[string]interface{}); ok && int64(m["id"].(float64)) == room.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("creator's class list %v does not include classroom %d", classes, room.ID)
	}
}

func TestUpdateMemberRoleNotFound(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")

	room := &models.ClassRoom{Name: "Chem", CreatedBy: creator.ID}
	if err := database.CreateClassRoom(db, room); err != nil {
		t.Fatalf("creating classroom failed: %v", err)
	}

	resp, err := app.Test(authedRequest(t, http.MethodPut, "/api/classrooms/1/update-member-role", map[string]interface{}{
		"userId": 9999,
		"role":   "MODERATOR",
	}))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM class_members WHERE role = 'MODERATOR'`).Scan(&count); err != nil {
		t.Fatalf("querying memberships failed: %v", err)
	}
	if count != 0 {
		t.Errorf("mutated %d rows, want 0", count)
	}
}

func TestAssignmentFanOut(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")

	room := &models.ClassRoom{Name: "Bio", CreatedBy: creator.ID}
	if err := database.CreateClassRoom(db, room); err != nil {
		t.Fatalf("creating classroom failed: %v", err)
	}

	const extraMembers = 3
	for i := 0; i < extraMembers; i++ {
		u := createTestUser(t, db, "Member", string(rune('a'+i))+"@example.com")
		member := &models.ClassMember{UserID: u.ID, ClassID: room.ID, Role: models.RoleNormal}
		if err := database.AddClassMember(db, member); err != nil {
			t.Fatalf("adding member failed: %v", err)
		}
	}

	resp, err := app.Test(authedRequest(t, http.MethodPost, "/api/classrooms/1/assignments", map[string]interface{}{
		"title":       "Lab report",
		"description": "due friday",
		"createdBy":   creator.ID,
	}))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM assignment_assigned_to`).Scan(&count); err != nil {
		t.Fatalf("querying fan-out failed: %v", err)
	}
	if count != extraMembers {
		t.Errorf("assigned-to rows = %d, want %d", count, extraMembers)
	}
}

func TestListFilesIncludesClassRoom(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")

	room := &models.ClassRoom{Name: "History", CreatedBy: creator.ID}
	if err := database.CreateClassRoom(db, room); err != nil {
		t.Fatalf("creating classroom failed: %v", err)
	}
	file := &models.FileUpload{
		FilePath: "/public/uploads/notes.pdf",
		FileType: "application/pdf",
		FileName: "notes.pdf",
		UserID:   creator.ID,
		ClassID:  room.ID,
	}
	if err := database.CreateFileUpload(db, file); err != nil {
		t.Fatalf("creating file failed: %v", err)
	}

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/classrooms/1/files", nil))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	files, _ := body["files"].([]interface{})
	if len(files) != 1 {
		t.Fatalf("files = %d, want 1", len(files))
	}
	got := files[0].(map[string]interface{})
	uploader, _ := got["uploader"].(map[string]interface{})
	if uploader == nil || uploader["email"] != creator.Email {
		t.Errorf("uploader = %v, want email %q", uploader, creator.Email)
	}
	classRoom, _ := got["classRoom"].(map[string]interface{})
	if classRoom == nil {
		t.Fatalf("classRoom missing from file %v", got)
	}
	if classRoom["name"] != room.Name || int64(classRoom["id"].(float64)) != room.ID {
		t.Errorf("classRoom = %v, want id %d name %q", classRoom, room.ID, room.Name)
	}
}

func TestAssignmentsIncludeLinkedFile(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")

	room := &models.ClassRoom{Name: "Art", CreatedBy: creator.ID}
	if err := database.CreateClassRoom(db, room); err != nil {
		t.Fatalf("creating classroom failed: %v", err)
	}
	file := &models.FileUpload{
		FilePath: "/public/uploads/brief.pdf",
		FileType: "application/pdf",
		FileName: "brief.pdf",
		UserID:   creator.ID,
		ClassID:  room.ID,
	}
	if err := database.CreateFileUpload(db, file); err != nil {
		t.Fatalf("creating file failed: %v", err)
	}
	assignment := &models.Assignment{
		Title:     "Sketch study",
		ClassID:   room.ID,
		CreatedBy: creator.ID,
		FileID:    &file.ID,
	}
	if err := database.CreateAssignment(db, assignment); err != nil {
		t.Fatalf("creating assignment failed: %v", err)
	}
	plain := &models.Assignment{Title: "Reading", ClassID: room.ID, CreatedBy: creator.ID}
	if err := database.CreateAssignment(db, plain); err != nil {
		t.Fatalf("creating assignment failed: %v", err)
	}

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/classrooms/1/1/assignments", nil))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	list, _ := body["assignments"].([]interface{})
	if len(list) != 2 {
		t.Fatalf("assignments = %d, want 2", len(list))
	}
	for _, item := range list {
		a := item.(map[string]interface{})
		linked, _ := a["file"].(map[string]interface{})
		switch a["title"] {
		case assignment.Title:
			if linked == nil || linked["fileName"] != file.FileName {
				t.Errorf("linked file = %v, want fileName %q", linked, file.FileName)
			}
		case plain.Title:
			if linked != nil {
				t.Errorf("assignment %q has file %v, want none", plain.Title, linked)
			}
		}
	}
}

func TestAvailableMembers(t *testing.T) {
	db := setupDB(t)
	app := newIntegrationApp(t, db)
	creator := createTestUser(t, db, "Jane", "jane@example.com")
	outsider := createTestUser(t, db, "Omar", "omar@example.com")
	createTestUser(t, db, "Pia", "pia@example.com")

	room := &models.ClassRoom{Name: "CS", CreatedBy: creator.ID}
	if err := database.CreateClassRoom(db, room); err != nil {
		t.Fatalf("creating classroom failed: %v", err)
	}
	member := &models.ClassMember{UserID: outsider.ID, ClassID: room.ID, Role: models.RoleNormal}
	if err := database.AddClassMember(db, member); err != nil {
		t.Fatalf("adding member failed: %v", err)
	}

	// 3 users total; creator requests: creator and outsider are members, so only Pia remains
	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/classrooms/1/1/available-members", nil))
	if err != nil {
		t.Fatalf("app.Test() failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if got := int(body["count"].(float64)); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

package classrooms

import (
	"classhub/app/routes/auth"
	"classhub/app/storage"

	"github.com/gofiber/fiber/v2"
)

// store holds the upload destination for this route group, injected at setup.
var store storage.Storage

func SetupClassroomsRoutes(app *fiber.App, uploads storage.Storage) {
	store = uploads

	api := app.Group("/api/classrooms")
	api.Use(auth.AuthMiddleware)

	// Static paths go first so the param routes below never shadow them.
	api.Post("/", CreateClassroomAPI)
	api.Post("/upload", UploadFileAPI)
	api.Get("/files/:fileId/comments", GetCommentsAPI)

	// Membership
	api.Post("/:classId/add-member", AddMemberAPI)
	api.Get("/:classId/members", GetMembersAPI)
	api.Get("/:userId/classes", GetUserClassesAPI)
	api.Put("/:classId/update-member-role", UpdateMemberRoleAPI)
	api.Get("/:classId/:userId/available-members", GetAvailableMembersAPI)

	// Files & comments
	api.Get("/:classId/files", GetFilesAPI)
	api.Post("/:classId/files/:fileId/comments", AddCommentAPI)

	// Assignments & submissions
	api.Post("/:classId/assignments", CreateAssignmentAPI)
	api.Get("/:classId/:userId/assignments", GetAssignmentsAPI)
	api.Post("/:assignmentId/submit", SubmitAssignmentAPI)
	api.Get("/:assignmentId/submissions", GetSubmissionsAPI)
}

package docs

// RouteDoc describes one endpoint for the discovery page. The table is
// declarative only; it has no runtime behavior beyond being served.
type RouteDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Body        string `json:"body,omitempty"`
	Description string `json:"description"`
	Success     int    `json:"success"`
}

var Routes = []RouteDoc{
	{"POST", "/api/users/register", "{name, email, password}", "Register a new user", 201},
	{"POST", "/api/users/login", "{email, password}", "Log in and receive a JWT", 200},
	{"GET", "/api/users", "", "List all users", 200},

	{"POST", "/api/classrooms", "{name, description, creatorId}", "Create a classroom; creator becomes ADMIN member", 201},
	{"POST", "/api/classrooms/:classId/add-member", "{userId, role?}", "Add a member to a classroom (role defaults to NORMAL)", 201},
	{"GET", "/api/classrooms/:classId/members", "", "List classroom members with user profiles", 200},
	{"GET", "/api/classrooms/:userId/classes", "", "List classrooms the user belongs to (?include=members)", 200},
	{"PUT", "/api/classrooms/:classId/update-member-role", "{userId, role}", "Change a member's role; 404 when no row matches", 200},
	{"GET", "/api/classrooms/:classId/:userId/available-members", "", "List users not yet members of the classroom", 200},

	{"POST", "/api/classrooms/upload", "multipart{file, fileType, userId, classId, fileName}", "Upload a file to a classroom", 201},
	{"GET", "/api/classrooms/:classId/files", "", "List classroom files with uploaders and comments", 200},
	{"POST", "/api/classrooms/:classId/files/:fileId/comments", "{content, authorId}", "Comment on a file", 201},
	{"GET", "/api/classrooms/files/:fileId/comments", "", "List a file's comments with authors", 200},

	{"POST", "/api/classrooms/:classId/assignments", "{title, description, createdBy, fileId?}", "Create an assignment, fanned out to every other member", 201},
	{"GET", "/api/classrooms/:classId/:userId/assignments", "", "List class assignments scoped to the requesting user", 200},
	{"POST", "/api/classrooms/:assignmentId/submit", "multipart{file, userId}", "Submit a response to an assignment", 201},
	{"GET", "/api/classrooms/:assignmentId/submissions", "", "List an assignment's submissions with users", 200},

	{"POST", "/api/posts", "{title, content, classRoomId, authorId, postType}", "Create a classroom post", 201},
	{"GET", "/api/posts/:classRoomId/posts", "", "List a classroom's posts with authors", 200},
}

package database

import (
	"database/sql"

	"github.com/rs/zerolog/log"
)

// RunMigrations applies the schema at startup. Statements are idempotent so the
// call is safe on every boot; versioned migrations for existing deployments live
// under migrations/ and are driven by cmd/migrate.
func RunMigrations(db *sql.DB) error {
	log.Info().Msg("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS class_rooms (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			created_by BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS class_members (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			class_id BIGINT NOT NULL REFERENCES class_rooms(id),
			role TEXT NOT NULL DEFAULT 'NORMAL' CHECK (role IN ('ADMIN', 'MODERATOR', 'NORMAL')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			class_room_id BIGINT NOT NULL REFERENCES class_rooms(id),
			author_id BIGINT NOT NULL REFERENCES users(id),
			post_type TEXT NOT NULL CHECK (post_type IN ('ASSIGNMENT', 'MESSAGE')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS file_uploads (
			id BIGSERIAL PRIMARY KEY,
			file_path TEXT NOT NULL,
			file_type TEXT NOT NULL DEFAULT '',
			file_name TEXT NOT NULL,
			user_id BIGINT NOT NULL REFERENCES users(id),
			class_id BIGINT NOT NULL REFERENCES class_rooms(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			file_id BIGINT NOT NULL REFERENCES file_uploads(id),
			author_id BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			class_id BIGINT NOT NULL REFERENCES class_rooms(id),
			created_by BIGINT NOT NULL REFERENCES users(id),
			file_id BIGINT REFERENCES file_uploads(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assignment_assigned_to (
			id BIGSERIAL PRIMARY KEY,
			assignment_id BIGINT NOT NULL REFERENCES assignments(id),
			user_id BIGINT NOT NULL REFERENCES users(id),
			assigned_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id BIGSERIAL PRIMARY KEY,
			assignment_id BIGINT NOT NULL REFERENCES assignments(id),
			user_id BIGINT NOT NULL REFERENCES users(id),
			file_name TEXT NOT NULL,
			file_path TEXT NOT NULL,
			grade DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_class_members_class ON class_members(class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_class_members_user ON class_members(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_class_room ON posts(class_room_id)`,
		`CREATE INDEX IF NOT EXISTS idx_file_uploads_class ON file_uploads(class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_file ON comments(file_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_class ON assignments(class_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assigned_to_assignment ON assignment_assigned_to(assignment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_submissions_assignment ON submissions(assignment_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Error().Err(err).Msg("Migration statement failed")
			return err
		}
	}

	log.Info().Msg("Database migrations completed successfully")
	return nil
}

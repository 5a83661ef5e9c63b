package database

import (
	"database/sql"

	"classhub/app/models"
)

func CreateFileUpload(db *sql.DB, file *models.FileUpload) error {
	query := `INSERT INTO file_uploads (file_path, file_type, file_name, user_id, class_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, file.FilePath, file.FileType, file.FileName, file.UserID, file.ClassID).Scan(
		&file.ID, &file.CreatedAt,
	)
}

// GetFilesByClass returns the classroom's files with uploader profiles, the
// owning classroom, and their comments (each with its author).
func GetFilesByClass(db *sql.DB, classID int64) ([]*models.FileUpload, error) {
	query := `SELECT f.id, f.file_path, f.file_type, f.file_name, f.user_id, f.class_id, f.created_at,
					 u.id, u.name, u.email, u.created_at,
					 cr.id, cr.name, cr.description, cr.created_by, cr.created_at
			  FROM file_uploads f
			  JOIN users u ON u.id = f.user_id
			  JOIN class_rooms cr ON cr.id = f.class_id
			  WHERE f.class_id = $1
			  ORDER BY f.created_at DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.FileUpload
	byID := make(map[int64]*models.FileUpload)
	for rows.Next() {
		file := &models.FileUpload{Uploader: &models.User{}, ClassRoom: &models.ClassRoom{}}
		if err := rows.Scan(
			&file.ID, &file.FilePath, &file.FileType, &file.FileName, &file.UserID, &file.ClassID, &file.CreatedAt,
			&file.Uploader.ID, &file.Uploader.Name, &file.Uploader.Email, &file.Uploader.CreatedAt,
			&file.ClassRoom.ID, &file.ClassRoom.Name, &file.ClassRoom.Description, &file.ClassRoom.CreatedBy, &file.ClassRoom.CreatedAt,
		); err != nil {
			return nil, err
		}
		file.Comments = []*models.Comment{}
		files = append(files, file)
		byID[file.ID] = file
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return files, nil
	}

	commentQuery := `SELECT c.id, c.content, c.file_id, c.author_id, c.created_at,
							u.id, u.name, u.email, u.created_at
					 FROM comments c
					 JOIN users u ON u.id = c.author_id
					 JOIN file_uploads f ON f.id = c.file_id
					 WHERE f.class_id = $1
					 ORDER BY c.created_at ASC`

	crows, err := db.Query(commentQuery, classID)
	if err != nil {
		return nil, err
	}
	defer crows.Close()

	for crows.Next() {
		comment := &models.Comment{Author: &models.User{}}
		if err := crows.Scan(
			&comment.ID, &comment.Content, &comment.FileID, &comment.AuthorID, &comment.CreatedAt,
			&comment.Author.ID, &comment.Author.Name, &comment.Author.Email, &comment.Author.CreatedAt,
		); err != nil {
			return nil, err
		}
		if file, ok := byID[comment.FileID]; ok {
			file.Comments = append(file.Comments, comment)
		}
	}
	return files, crows.Err()
}

func GetFileByID(db *sql.DB, fileID int64) (*models.FileUpload, error) {
	file := &models.FileUpload{}
	query := `SELECT id, file_path, file_type, file_name, user_id, class_id, created_at
			  FROM file_uploads WHERE id = $1`

	err := db.QueryRow(query, fileID).Scan(
		&file.ID, &file.FilePath, &file.FileType, &file.FileName, &file.UserID, &file.ClassID, &file.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func CreateComment(db *sql.DB, comment *models.Comment) error {
	query := `INSERT INTO comments (content, file_id, author_id, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, comment.Content, comment.FileID, comment.AuthorID).Scan(
		&comment.ID, &comment.CreatedAt,
	)
}

// GetCommentsByFile returns a file's comments with their authors, oldest first.
func GetCommentsByFile(db *sql.DB, fileID int64) ([]*models.Comment, error) {
	query := `SELECT c.id, c.content, c.file_id, c.author_id, c.created_at,
					 u.id, u.name, u.email, u.created_at
			  FROM comments c
			  JOIN users u ON u.id = c.author_id
			  WHERE c.file_id = $1
			  ORDER BY c.created_at ASC`

	rows, err := db.Query(query, fileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		comment := &models.Comment{Author: &models.User{}}
		if err := rows.Scan(
			&comment.ID, &comment.Content, &comment.FileID, &comment.AuthorID, &comment.CreatedAt,
			&comment.Author.ID, &comment.Author.Name, &comment.Author.Email, &comment.Author.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

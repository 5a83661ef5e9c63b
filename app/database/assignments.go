package database

import (
	"database/sql"

	"classhub/app/models"
	"github.com/lib/pq"
)

// CreateAssignment inserts the assignment and fans out one assigned-to row per
// class member except the creator. Both writes happen in one transaction so a
// failure never leaves an assignment without its fan-out.
func CreateAssignment(db *sql.DB, assignment *models.Assignment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO assignments (title, description, class_id, created_by, file_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, created_at`

	err = tx.QueryRow(query,
		assignment.Title, assignment.Description, assignment.ClassID, assignment.CreatedBy, assignment.FileID,
	).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		return err
	}

	fanOut := `INSERT INTO assignment_assigned_to (assignment_id, user_id, assigned_at)
			   SELECT $1, user_id, NOW()
			   FROM class_members
			   WHERE class_id = $2 AND user_id != $3`
	if _, err := tx.Exec(fanOut, assignment.ID, assignment.ClassID, assignment.CreatedBy); err != nil {
		return err
	}

	return tx.Commit()
}

// GetAssignmentsByClass returns the class assignments with the linked file and
// with assigned-to and submission rows restricted to the requesting user.
func GetAssignmentsByClass(db *sql.DB, classID, userID int64) ([]*models.Assignment, error) {
	query := `SELECT a.id, a.title, a.description, a.class_id, a.created_by, a.file_id, a.created_at
			  FROM assignments a
			  WHERE a.class_id = $1
			  ORDER BY a.created_at DESC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	byID := make(map[int64]*models.Assignment)
	var ids []int64
	for rows.Next() {
		a := &models.Assignment{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.ClassID, &a.CreatedBy, &a.FileID, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.AssignedTo = []*models.AssignmentAssigned{}
		a.Submissions = []*models.Submission{}
		assignments = append(assignments, a)
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return assignments, nil
	}

	assignedQuery := `SELECT id, assignment_id, user_id, assigned_at
					  FROM assignment_assigned_to
					  WHERE assignment_id = ANY($1) AND user_id = $2`
	arows, err := db.Query(assignedQuery, pq.Array(ids), userID)
	if err != nil {
		return nil, err
	}
	defer arows.Close()
	for arows.Next() {
		at := &models.AssignmentAssigned{}
		if err := arows.Scan(&at.ID, &at.AssignmentID, &at.UserID, &at.AssignedAt); err != nil {
			return nil, err
		}
		if a, ok := byID[at.AssignmentID]; ok {
			a.AssignedTo = append(a.AssignedTo, at)
		}
	}
	if err := arows.Err(); err != nil {
		return nil, err
	}

	subQuery := `SELECT id, assignment_id, user_id, file_name, file_path, grade, created_at
				 FROM submissions
				 WHERE assignment_id = ANY($1) AND user_id = $2`
	srows, err := db.Query(subQuery, pq.Array(ids), userID)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		sub := &models.Submission{}
		if err := srows.Scan(&sub.ID, &sub.AssignmentID, &sub.UserID, &sub.FileName, &sub.FilePath, &sub.Grade, &sub.CreatedAt); err != nil {
			return nil, err
		}
		if a, ok := byID[sub.AssignmentID]; ok {
			a.Submissions = append(a.Submissions, sub)
		}
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}

	var fileIDs []int64
	for _, a := range assignments {
		if a.FileID != nil {
			fileIDs = append(fileIDs, *a.FileID)
		}
	}
	if len(fileIDs) == 0 {
		return assignments, nil
	}

	fileQuery := `SELECT id, file_path, file_type, file_name, user_id, class_id, created_at
				  FROM file_uploads
				  WHERE id = ANY($1)`
	frows, err := db.Query(fileQuery, pq.Array(fileIDs))
	if err != nil {
		return nil, err
	}
	defer frows.Close()
	filesByID := make(map[int64]*models.FileUpload)
	for frows.Next() {
		file := &models.FileUpload{}
		if err := frows.Scan(&file.ID, &file.FilePath, &file.FileType, &file.FileName, &file.UserID, &file.ClassID, &file.CreatedAt); err != nil {
			return nil, err
		}
		filesByID[file.ID] = file
	}
	if err := frows.Err(); err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if a.FileID != nil {
			a.File = filesByID[*a.FileID]
		}
	}
	return assignments, nil
}

func CreateSubmission(db *sql.DB, sub *models.Submission) error {
	query := `INSERT INTO submissions (assignment_id, user_id, file_name, file_path, grade, created_at)
			  VALUES ($1, $2, $3, $4, 0, NOW())
			  RETURNING id, grade, created_at`

	return db.QueryRow(query, sub.AssignmentID, sub.UserID, sub.FileName, sub.FilePath).Scan(
		&sub.ID, &sub.Grade, &sub.CreatedAt,
	)
}

// GetSubmissionsByAssignment returns the assignment's submissions with the
// submitting users.
func GetSubmissionsByAssignment(db *sql.DB, assignmentID int64) ([]*models.Submission, error) {
	query := `SELECT s.id, s.assignment_id, s.user_id, s.file_name, s.file_path, s.grade, s.created_at,
					 u.id, u.name, u.email, u.created_at
			  FROM submissions s
			  JOIN users u ON u.id = s.user_id
			  WHERE s.assignment_id = $1
			  ORDER BY s.created_at DESC`

	rows, err := db.Query(query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub := &models.Submission{User: &models.User{}}
		if err := rows.Scan(
			&sub.ID, &sub.AssignmentID, &sub.UserID, &sub.FileName, &sub.FilePath, &sub.Grade, &sub.CreatedAt,
			&sub.User.ID, &sub.User.Name, &sub.User.Email, &sub.User.CreatedAt,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

package database

import (
	"database/sql"

	"classhub/app/models"
)

func AddClassMember(db *sql.DB, member *models.ClassMember) error {
	query := `INSERT INTO class_members (user_id, class_id, role, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, member.UserID, member.ClassID, member.Role).Scan(
		&member.ID, &member.CreatedAt,
	)
}

// GetMembersByClass returns the class membership rows joined with user profiles.
func GetMembersByClass(db *sql.DB, classID int64) ([]*models.ClassMember, error) {
	query := `SELECT m.id, m.user_id, m.class_id, m.role, m.created_at,
					 u.id, u.name, u.email, u.created_at
			  FROM class_members m
			  JOIN users u ON u.id = m.user_id
			  WHERE m.class_id = $1
			  ORDER BY m.created_at ASC`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.ClassMember
	for rows.Next() {
		member := &models.ClassMember{User: &models.User{}}
		if err := rows.Scan(
			&member.ID, &member.UserID, &member.ClassID, &member.Role, &member.CreatedAt,
			&member.User.ID, &member.User.Name, &member.User.Email, &member.User.CreatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// UpdateMemberRole changes the role for every matching (class, user) membership
// and returns how many rows were updated.
func UpdateMemberRole(db *sql.DB, classID, userID int64, role models.Role) (int64, error) {
	query := `UPDATE class_members SET role = $1 WHERE class_id = $2 AND user_id = $3`
	result, err := db.Exec(query, role, classID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetMemberUserIDs returns the user ids of every member of the class.
func GetMemberUserIDs(db *sql.DB, classID int64) ([]int64, error) {
	query := `SELECT user_id FROM class_members WHERE class_id = $1`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

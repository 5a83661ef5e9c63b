package database

import (
	"database/sql"

	"classhub/app/models"
)

// CreateClassRoom inserts the classroom and the creator's ADMIN membership in a
// single transaction. A classroom never exists without its admin row.
func CreateClassRoom(db *sql.DB, room *models.ClassRoom) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO class_rooms (name, description, created_by, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	err = tx.QueryRow(query, room.Name, room.Description, room.CreatedBy).Scan(
		&room.ID, &room.CreatedAt,
	)
	if err != nil {
		return err
	}

	memberQuery := `INSERT INTO class_members (user_id, class_id, role, created_at)
					VALUES ($1, $2, $3, NOW())`
	if _, err := tx.Exec(memberQuery, room.CreatedBy, room.ID, models.RoleAdmin); err != nil {
		return err
	}

	return tx.Commit()
}

func GetClassRoomByID(db *sql.DB, classID int64) (*models.ClassRoom, error) {
	room := &models.ClassRoom{}
	query := `SELECT id, name, description, created_by, created_at
			  FROM class_rooms WHERE id = $1`

	err := db.QueryRow(query, classID).Scan(
		&room.ID, &room.Name, &room.Description, &room.CreatedBy, &room.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// GetClassRoomsByMember returns every classroom the user belongs to.
func GetClassRoomsByMember(db *sql.DB, userID int64) ([]*models.ClassRoom, error) {
	query := `SELECT c.id, c.name, c.description, c.created_by, c.created_at
			  FROM class_rooms c
			  JOIN class_members m ON m.class_id = c.id
			  WHERE m.user_id = $1
			  ORDER BY c.created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.ClassRoom
	for rows.Next() {
		room := &models.ClassRoom{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Description, &room.CreatedBy, &room.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

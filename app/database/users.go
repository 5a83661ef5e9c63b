package database

import (
	"database/sql"

	"classhub/app/models"
)

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (name, email, password, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, user.Name, user.Email, user.Password).Scan(
		&user.ID, &user.CreatedAt,
	)
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, created_at FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, name, email, created_at FROM users ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

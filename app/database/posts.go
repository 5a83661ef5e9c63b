package database

import (
	"database/sql"

	"classhub/app/models"
)

func CreatePost(db *sql.DB, post *models.Post) error {
	query := `INSERT INTO posts (title, content, class_room_id, author_id, post_type, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, post.Title, post.Content, post.ClassRoomID, post.AuthorID, post.PostType).Scan(
		&post.ID, &post.CreatedAt,
	)
}

// GetPostsByClassRoom returns the classroom's posts with their authors, newest first.
func GetPostsByClassRoom(db *sql.DB, classRoomID int64) ([]*models.Post, error) {
	query := `SELECT p.id, p.title, p.content, p.class_room_id, p.author_id, p.post_type, p.created_at,
					 u.id, u.name, u.email, u.created_at
			  FROM posts p
			  JOIN users u ON u.id = p.author_id
			  WHERE p.class_room_id = $1
			  ORDER BY p.created_at DESC`

	rows, err := db.Query(query, classRoomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{Author: &models.User{}}
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.ClassRoomID, &post.AuthorID, &post.PostType, &post.CreatedAt,
			&post.Author.ID, &post.Author.Name, &post.Author.Email, &post.Author.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

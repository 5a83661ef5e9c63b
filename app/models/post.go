package models

import "time"

type Post struct {
	ID          int64     `json:"id" gorm:"primaryKey" validate:"required"`
	Title       string    `json:"title" gorm:"not null" validate:"required"`
	Content     string    `json:"content" gorm:"not null" validate:"required"`
	ClassRoomID int64     `json:"classRoomId" gorm:"not null;index" validate:"required,gt=0"`
	AuthorID    int64     `json:"authorId" gorm:"not null;index" validate:"required,gt=0"`
	PostType    PostType  `json:"postType" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
